package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when a request never reached the service
	// or no response came back.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse is returned when a successful response body
	// cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a non-2xx reply. Detail holds the service's human-readable
// `detail` message when the body carried one.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// DetailOf returns the service detail message carried by err, if any.
func DetailOf(err error) (string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}
