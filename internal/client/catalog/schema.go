package catalog

import (
	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// FieldType is the wire type a textual draft value is converted to.
type FieldType int

const (
	TextField FieldType = iota
	IntegerField
	DateField
)

func (t FieldType) String() string {
	switch t {
	case IntegerField:
		return "integer"
	case DateField:
		return "date"
	default:
		return "text"
	}
}

// Field describes one editable field of an entity kind.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	// Ref names the referenced kind for foreign-key fields.
	Ref string
}

// Schema describes one entity kind: E is the confirmed entity, R the request
// body sent on create and update.
type Schema[E models.Entity, R any] struct {
	// Kind is the collection name at the service, e.g. "artists".
	Kind string
	// Noun is the singular used in messages, e.g. "artist".
	Noun   string
	Fields []Field

	// Seed renders a committed entity into an editable draft.
	Seed func(E) Draft
	// Build converts a draft into a typed request. Required fields are
	// already known to be non-empty when it runs.
	Build func(Draft) (R, error)
}

// Field looks up a field by name.
func (s Schema[E, R]) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Blank returns a draft with every field present and empty.
func (s Schema[E, R]) Blank() Draft {
	d := make(Draft, len(s.Fields))
	for _, f := range s.Fields {
		d[f.Name] = ""
	}
	return d
}

// Request validates d locally and builds the request body. It never touches
// the network: a non-nil error means no call must be made.
func (s Schema[E, R]) Request(d Draft) (R, error) {
	var zero R

	for _, f := range s.Fields {
		if !f.Optional && d.Blank(f.Name) {
			return zero, models.Required(f.Name)
		}
	}

	req, err := s.Build(d)
	if err != nil {
		return zero, err
	}
	if err := models.Validate(req); err != nil {
		return zero, err
	}
	return req, nil
}
