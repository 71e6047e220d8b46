package catalog

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// Draft holds the textual value of each field of one record, exactly as
// typed. Values are converted to typed request fields only on submission.
type Draft map[string]string

// Clone returns an independent copy of d.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Text returns the value of name verbatim.
func (d Draft) Text(name string) string {
	return d[name]
}

// Blank reports whether name is empty or only whitespace.
func (d Draft) Blank(name string) bool {
	return strings.TrimSpace(d[name]) == ""
}

// OptionalText returns nil when the value is blank, else the value verbatim.
func (d Draft) OptionalText(name string) *string {
	if d.Blank(name) {
		return nil
	}
	s := d[name]
	return &s
}

// Int parses a mandatory integer field.
func (d Draft) Int(name string) (int64, error) {
	s := strings.TrimSpace(d[name])
	if s == "" {
		return 0, models.Required(name)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "must be an integer"}
	}
	return n, nil
}

// OptionalInt parses an optional integer field; empty means absent.
func (d Draft) OptionalInt(name string) (*int64, error) {
	if d.Blank(name) {
		return nil, nil
	}
	n, err := d.Int(name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Date parses a mandatory calendar date field.
func (d Draft) Date(name string) (models.Date, error) {
	s := strings.TrimSpace(d[name])
	if s == "" {
		return models.Date{}, models.Required(name)
	}
	v, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, &models.ValidationError{Field: name, Reason: "must be a date (YYYY-MM-DD)"}
	}
	return v, nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
