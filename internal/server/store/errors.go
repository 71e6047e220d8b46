package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports an unknown id.
type NotFoundError struct {
	Noun string
	ID   int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Noun) }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError rejects a write that clashes with an existing record.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }
