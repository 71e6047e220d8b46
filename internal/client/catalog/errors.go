package catalog

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrNotEditing   = errors.New("record is not being edited")
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownToken = errors.New("unknown or used confirmation token")
)
