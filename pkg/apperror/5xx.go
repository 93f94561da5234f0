package apperror

import (
	"net/http"
)

const (
	InternalServerCode = "500001"
)

// 500 Internal Server Error
func ErrInternalServer(err error) Error {
	return NewError(err, http.StatusInternalServerError, InternalServerCode, "Internal Server Error")
}
