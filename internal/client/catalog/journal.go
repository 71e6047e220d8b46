package catalog

import "context"

// Op names a confirmed cache mutation.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Mutation is one confirmed change applied to a cache. Payload is the
// confirmed entity (create, update), the whole collection (load) or nil
// (delete).
type Mutation struct {
	Kind    string
	Op      Op
	ID      int64
	Payload any
}

// Recorder receives every confirmed mutation in the order it was applied.
type Recorder interface {
	Record(ctx context.Context, m Mutation) error
}
