package internal

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a message that is safe to
// show the client. Err is the cause and is only ever logged.
type HTTPError struct {
	Err     error
	Message string
	Code    int
}

// NewHTTPError returns an HTTPError with no cause.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string   { return e.Message }
func (e *HTTPError) Unwrap() error   { return e.Err }
func (e *HTTPError) StatusCode() int { return e.Code }

// Wrap returns a copy of e with err as its cause.
func (e *HTTPError) Wrap(err error) *HTTPError {
	out := *e
	out.Err = err
	return &out
}

func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func ErrMethodNotAllowed(message string) *HTTPError {
	return NewHTTPError(http.StatusMethodNotAllowed, message)
}

func ErrInternal(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// AsHTTPError returns the first HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
