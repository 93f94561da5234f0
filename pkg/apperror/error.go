package apperror

import (
	"github.com/pkg/errors"
)

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errCode string, msg string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errCode,
		Message:   msg,
	}
}

func (e Error) Error() string {
	if e.Raw == nil {
		return e.Message
	}

	return errors.Wrap(e.Raw, e.Message).Error()
}

func (e Error) Unwrap() error {
	return e.Raw
}
