package httpclientx

import (
	"errors"
	"fmt"
)

// ErrRequestFailed indicates that we could not complete the request either
// because of a transport failure or because the status code is not 2xx.
type ErrRequestFailed struct {
	// StatusCode is the HTTP status code, or zero on transport failure.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("httpclientx: request failed: %s", err.Err.Error())
	}
	return fmt.Sprintf("httpclientx: request failed: status %d", err.StatusCode)
}

// Unwrap allows using errors.Is on the underlying transport error.
func (err *ErrRequestFailed) Unwrap() error {
	return err.Err
}

// ErrParseFailed indicates that the response body is not valid JSON.
type ErrParseFailed struct {
	// Err is the underlying parse error.
	Err error
}

// Error implements error.
func (err *ErrParseFailed) Error() string {
	return fmt.Sprintf("httpclientx: parse failed: %s", err.Err.Error())
}

// Unwrap returns the underlying error.
func (err *ErrParseFailed) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code carried by err, if err wraps an
// [*ErrRequestFailed] with a status code, or zero otherwise.
func StatusCode(err error) int {
	var reqerr *ErrRequestFailed
	if errors.As(err, &reqerr) {
		return reqerr.StatusCode
	}
	return 0
}

// IsUnauthorized returns true when err is a 401 or 403 [*ErrRequestFailed].
func IsUnauthorized(err error) bool {
	switch StatusCode(err) {
	case 401, 403:
		return true
	default:
		return false
	}
}
