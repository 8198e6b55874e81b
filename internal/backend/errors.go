package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError for any non-2xx answer
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrCircuitOpen is returned while the read breaker rejects calls
	ErrCircuitOpen = errors.New("backend unavailable: circuit open")

	// ErrResponseTooLarge is returned when a body exceeds MaxResponseBytes
	ErrResponseTooLarge = errors.New("response body too large")
)

// StatusError reports a non-2xx HTTP answer
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s %d", e.Method, e.Path, ErrUnexpectedStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ServerSide reports whether the failure is on the backend (5xx)
func (e *StatusError) ServerSide() bool {
	return e.StatusCode >= 500
}
