package apperror

import (
	"net/http"
)

const (
	ValidationCode     = "400002"
	EntityNotFoundCode = "404006"
)

// 400 Bad Request
func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "No such event source")
}
