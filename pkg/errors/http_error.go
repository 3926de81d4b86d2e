package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code, defaulting to 500 for codes outside the HTTP range.
func (e *HTTPError) StatusCode() int {
	if e.Code < 100 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}
