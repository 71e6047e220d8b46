package journal

import (
	"context"
	"time"
)

// Entry is one journal row. Payload holds the JSON of the confirmed entity,
// the JSON array of a loaded collection, or nothing for a delete.
type Entry struct {
	Seq        int64
	Kind       string
	Op         string
	EntityID   int64
	Payload    []byte
	RecordedAt time.Time
}

// Repository describes journal storage.
type Repository interface {
	// Append adds e at the end of its kind's journal and sets e.Seq.
	Append(ctx context.Context, e *Entry) error

	// Entries returns the rows of kind in append order.
	Entries(ctx context.Context, kind string) ([]Entry, error)

	// ClearKind removes every row of kind.
	ClearKind(ctx context.Context, kind string) error

	// Clear removes every row.
	Clear(ctx context.Context) error
}
