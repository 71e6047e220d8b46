package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/artlog/internal/client/catalog"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/google/uuid"
)

// refSource is the part of a catalog.Resolver a view needs.
type refSource interface {
	Load(ctx context.Context) error
	Choices(f catalog.Field) []catalog.Choice
	Label(id int64) (string, bool)
}

// view is one collection screen. kindView is its only implementation; the
// interface hides the entity type parameters from the REPL.
type view interface {
	Kind() string
	Activate(ctx context.Context) error
	Refresh(ctx context.Context) error
	Print(w io.Writer)
	PrintForm(w io.Writer)
	SetFormField(name, value string) error
	Add(ctx context.Context) (int64, error)
	Edit(id int64) error
	Set(name, value string) error
	Save(ctx context.Context) error
	Cancel()
	RequestDelete(id int64) (uuid.UUID, error)
	ConfirmDelete(ctx context.Context, token uuid.UUID) error
	DeclineDelete(token uuid.UUID) error
	Choices(field string) ([]catalog.Choice, error)
	Message() string
	ClearMessage()
	Status() string
}

type kindView[E models.Entity, R any] struct {
	ctrl   *catalog.Controller[E, R]
	refs   map[string]refSource
	format func(e E, label labelFunc) string
}

// labelFunc renders a reference for display, e.g. an artist id as its name.
type labelFunc func(kind string, id int64) string

func newKindView[E models.Entity, R any](ctrl *catalog.Controller[E, R], refs map[string]refSource, format func(E, labelFunc) string) *kindView[E, R] {
	return &kindView[E, R]{ctrl: ctrl, refs: refs, format: format}
}

func (v *kindView[E, R]) Kind() string { return v.ctrl.Schema().Kind }

// Activate refreshes the collection and loads every reference list. All
// loads are attempted; the first error is returned.
func (v *kindView[E, R]) Activate(ctx context.Context) error {
	err := v.ctrl.Refresh(ctx)
	for kind, ref := range v.refs {
		if rerr := ref.Load(ctx); rerr != nil && err == nil {
			err = fmt.Errorf("load %s: %w", kind, rerr)
		}
	}
	return err
}

func (v *kindView[E, R]) Refresh(ctx context.Context) error { return v.ctrl.Refresh(ctx) }

func (v *kindView[E, R]) label(kind string, id int64) string {
	if ref, ok := v.refs[kind]; ok {
		if l, ok := ref.Label(id); ok {
			return l
		}
	}
	return "#" + strconv.FormatInt(id, 10)
}

func (v *kindView[E, R]) Print(w io.Writer) {
	items := v.ctrl.Items()
	if len(items) == 0 {
		fmt.Fprintf(w, "No %s yet.\n", v.Kind())
		return
	}

	editing, _ := v.ctrl.EditState().(catalog.Editing)
	for _, e := range items {
		marker := " "
		if editing.Draft != nil && editing.ID == e.EntityID() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %4d  %s\n", marker, e.EntityID(), v.format(e, v.label))
	}
}

func (v *kindView[E, R]) PrintForm(w io.Writer) {
	form := v.ctrl.Form()
	if st, ok := v.ctrl.EditState().(catalog.Editing); ok {
		fmt.Fprintf(w, "Editing %s %d:\n", v.ctrl.Schema().Noun, st.ID)
		form = st.Draft
	} else {
		fmt.Fprintf(w, "New %s:\n", v.ctrl.Schema().Noun)
	}
	for _, f := range v.ctrl.Schema().Fields {
		value := form[f.Name]
		if f.Ref != "" && value != "" {
			if id, err := strconv.ParseInt(value, 10, 64); err == nil {
				value = fmt.Sprintf("%s (%s)", value, v.label(f.Ref, id))
			}
		}
		opt := ""
		if f.Optional {
			opt = " (optional)"
		}
		fmt.Fprintf(w, "  %-12s %s%s\n", f.Name+":", value, opt)
	}
}

func (v *kindView[E, R]) SetFormField(name, value string) error {
	return v.ctrl.SetFormField(name, value)
}

func (v *kindView[E, R]) Add(ctx context.Context) (int64, error) {
	e, err := v.ctrl.Create(ctx)
	if err != nil {
		return 0, err
	}
	return e.EntityID(), nil
}

func (v *kindView[E, R]) Edit(id int64) error          { return v.ctrl.BeginEdit(id) }
func (v *kindView[E, R]) Set(name, value string) error { return v.ctrl.UpdateField(name, value) }
func (v *kindView[E, R]) Cancel()                      { v.ctrl.CancelEdit() }

// Save commits the record currently being edited.
func (v *kindView[E, R]) Save(ctx context.Context) error {
	st, ok := v.ctrl.EditState().(catalog.Editing)
	if !ok {
		return catalog.ErrNotEditing
	}
	_, err := v.ctrl.CommitEdit(ctx, st.ID)
	return err
}

func (v *kindView[E, R]) RequestDelete(id int64) (uuid.UUID, error) { return v.ctrl.RequestDelete(id) }

func (v *kindView[E, R]) ConfirmDelete(ctx context.Context, token uuid.UUID) error {
	return v.ctrl.ConfirmDelete(ctx, token)
}

func (v *kindView[E, R]) DeclineDelete(token uuid.UUID) error { return v.ctrl.DeclineDelete(token) }

// Choices lists the selectable values of a reference field.
func (v *kindView[E, R]) Choices(field string) ([]catalog.Choice, error) {
	f, ok := v.ctrl.Schema().Field(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownField, field)
	}
	ref, ok := v.refs[f.Ref]
	if f.Ref == "" || !ok {
		return nil, fmt.Errorf("%s is not a reference field", field)
	}
	return ref.Choices(f), nil
}

func (v *kindView[E, R]) Message() string { return v.ctrl.Message() }
func (v *kindView[E, R]) ClearMessage()   { v.ctrl.ClearMessage() }

func (v *kindView[E, R]) Status() string {
	if st, ok := v.ctrl.EditState().(catalog.Editing); ok {
		return fmt.Sprintf("%s, editing %d", v.Kind(), st.ID)
	}
	return v.Kind()
}

func formatArtist(a models.Artist, _ labelFunc) string {
	return fmt.Sprintf("%s  (%s, %s)", a.Name, a.Country, a.ArtStyle)
}

func formatArtwork(a models.Artwork, label labelFunc) string {
	s := fmt.Sprintf("%s, %d, by %s", a.Title, a.Year, label(models.KindArtists, a.ArtistID))
	if a.Description != nil {
		s += ": " + *a.Description
	}
	return s
}

func formatExhibition(e models.Exhibition, label labelFunc) string {
	s := fmt.Sprintf("%s at %s on %s", e.Theme, e.Location, e.Date)
	if e.ArtworkID != nil {
		s += ", featuring " + label(models.KindArtworks, *e.ArtworkID)
	}
	return s
}
