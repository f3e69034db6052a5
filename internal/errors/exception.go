package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func (e *Exception) HTTPStatus() int {
	return e.StatusCode
}

type statusCoder interface {
	HTTPStatus() int
}

// StatusCode maps an error from any layer to the HTTP status it should be
// reported with. Unknown errors are internal failures.
func StatusCode(err error) int {
	var coded statusCoder
	if errors.As(err, &coded) {
		return coded.HTTPStatus()
	}
	return http.StatusInternalServerError
}
