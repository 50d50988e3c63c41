package apicli

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested resource does not exist (HTTP 404).
var ErrNotFound = errors.New("resource not found")

// StatusError reports an HTTP status the client did not expect for the
// operation. 404s are reported as ErrNotFound instead.
type StatusError struct {
	Op   string // operation that failed, e.g. "create user"
	Code int    // HTTP status code
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apicli: %s: unexpected status %d", e.Op, e.Code)
}

// DecodeError reports a response body that could not be decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("apicli: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error means the resource is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStatus checks if an error is an unexpected-status failure.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsDecode checks if an error is a response decoding failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
