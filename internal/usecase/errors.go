package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoReferenceDefault    = errors.New("no reference default")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// UpstreamError reports a failed call to the SHL API together with the
// status code the provider answered with, so the HTTP layer can
// propagate it. StatusCode is 0 when the request never produced a
// response (timeout, connection refused); callers treat that as 500.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("shl api %s: status=%d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("shl api %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
