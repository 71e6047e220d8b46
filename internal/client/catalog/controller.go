package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/google/uuid"
)

type options struct {
	recorder Recorder
}

// Option configures a Controller.
type Option func(*options)

// WithRecorder sends every confirmed mutation to r.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// Controller orchestrates one entity kind: it calls the gateway, applies
// confirmed results to the cache, drives the edit session and keeps the
// user-visible message.
//
// The cache is never changed before the gateway has confirmed a mutation, and
// a failed call leaves both the cache and the relevant draft (create form or
// edit draft) as they were.
type Controller[E models.Entity, R any] struct {
	schema   Schema[E, R]
	gateway  client.Gateway[E, R]
	logger   logging.Logger
	recorder Recorder
	cache    *Cache[E]

	// mu guards everything below and serializes cache application with
	// recording. It is never held across a gateway call.
	mu      sync.Mutex
	session Session
	form    Draft
	pending map[uuid.UUID]int64
	message string
}

func NewController[E models.Entity, R any](schema Schema[E, R], gateway client.Gateway[E, R], logger logging.Logger, opts ...Option) *Controller[E, R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[E, R]{
		schema:   schema,
		gateway:  gateway,
		logger:   logger.With("kind", schema.Kind),
		recorder: o.recorder,
		cache:    NewCache[E](),
		session:  Session{state: Viewing{}},
		form:     schema.Blank(),
		pending:  make(map[uuid.UUID]int64),
	}
}

func (c *Controller[E, R]) Schema() Schema[E, R] { return c.schema }

// Items returns the cached collection.
func (c *Controller[E, R]) Items() []E { return c.cache.Items() }

// Get returns one cached entity.
func (c *Controller[E, R]) Get(id int64) (E, bool) { return c.cache.Get(id) }

// Message returns the current user-visible error message, "" when none.
func (c *Controller[E, R]) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// ClearMessage empties the message slot.
func (c *Controller[E, R]) ClearMessage() {
	c.mu.Lock()
	c.message = ""
	c.mu.Unlock()
}

// Refresh replaces the cache with the service's collection. On failure the
// previous contents stay in place.
func (c *Controller[E, R]) Refresh(ctx context.Context) error {
	items, err := c.gateway.List(ctx)
	if err != nil {
		return c.fail(ctx, "fetch", c.schema.Kind, err, false)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Load(items)
	c.message = ""
	c.record(ctx, Mutation{Kind: c.schema.Kind, Op: OpLoad, Payload: items})
	c.logger.Debug(ctx, "collection loaded", "count", len(items))
	return nil
}

// SetFormField sets one value of the create form.
func (c *Controller[E, R]) SetFormField(name, value string) error {
	if _, ok := c.schema.Field(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	c.mu.Lock()
	c.form[name] = value
	c.mu.Unlock()
	return nil
}

// Form returns a copy of the create form.
func (c *Controller[E, R]) Form() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone()
}

// ResetForm empties the create form.
func (c *Controller[E, R]) ResetForm() {
	c.mu.Lock()
	c.form = c.schema.Blank()
	c.mu.Unlock()
}

// Create submits the create form. The form is validated locally first; a
// validation failure makes no call. On success the confirmed entity is put
// first in the cache and the form is emptied; on failure the form is kept.
func (c *Controller[E, R]) Create(ctx context.Context) (E, error) {
	var zero E

	req, err := c.schema.Request(c.Form())
	if err != nil {
		return zero, c.fail(ctx, "create", c.schema.Noun, err, true)
	}

	e, err := c.gateway.Create(ctx, req)
	if err != nil {
		return zero, c.fail(ctx, "create", c.schema.Noun, err, true)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.InsertFront(e)
	c.form = c.schema.Blank()
	c.message = ""
	c.record(ctx, Mutation{Kind: c.schema.Kind, Op: OpCreate, ID: e.EntityID(), Payload: e})
	c.logger.Debug(ctx, "record created", "id", e.EntityID())
	return e, nil
}

// EditState returns the edit session state.
func (c *Controller[E, R]) EditState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State()
}

// BeginEdit puts id in edit mode with a draft copied from the cached entity.
// Any other record's edit is left.
func (c *Controller[E, R]) BeginEdit(id int64) error {
	e, ok := c.cache.Get(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", c.schema.Noun, id, ErrNotFound)
	}
	c.mu.Lock()
	c.session.Begin(id, c.schema.Seed(e))
	c.mu.Unlock()
	return nil
}

// CancelEdit discards the draft. No call is made and the cache is unchanged.
func (c *Controller[E, R]) CancelEdit() {
	c.mu.Lock()
	c.session.Cancel()
	c.mu.Unlock()
}

// UpdateField changes one value of the edit draft.
func (c *Controller[E, R]) UpdateField(name, value string) error {
	if _, ok := c.schema.Field(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Set(name, value)
}

// CommitEdit sends the draft of id as an update. On success the confirmed
// entity replaces the cached one and, if id is still being edited, the
// session returns to Viewing. On failure the session and draft are kept.
//
// A commit that is in flight when the edit is cancelled still applies its
// result when it returns.
func (c *Controller[E, R]) CommitEdit(ctx context.Context, id int64) (E, error) {
	var zero E

	c.mu.Lock()
	st, ok := c.session.state.(Editing)
	if !ok || st.ID != id {
		c.mu.Unlock()
		return zero, fmt.Errorf("%s %d: %w", c.schema.Noun, id, ErrNotEditing)
	}
	draft := st.Draft.Clone()
	c.mu.Unlock()

	req, err := c.schema.Request(draft)
	if err != nil {
		return zero, c.fail(ctx, "update", c.schema.Noun, err, true)
	}

	e, err := c.gateway.Update(ctx, id, req)
	if err != nil {
		return zero, c.fail(ctx, "update", c.schema.Noun, err, true)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cache.Replace(id, e) {
		c.logger.Warn(ctx, "confirmed update for record no longer cached", "id", id)
	}
	c.session.CancelIf(id)
	c.message = ""
	c.record(ctx, Mutation{Kind: c.schema.Kind, Op: OpUpdate, ID: id, Payload: e})
	c.logger.Debug(ctx, "record updated", "id", id)
	return e, nil
}

// RequestDelete opens the confirmation gate for deleting id and returns the
// token that must be confirmed or declined. Nothing is sent yet.
func (c *Controller[E, R]) RequestDelete(id int64) (uuid.UUID, error) {
	if _, ok := c.cache.Get(id); !ok {
		return uuid.Nil, fmt.Errorf("%s %d: %w", c.schema.Noun, id, ErrNotFound)
	}
	token := uuid.New()

	c.mu.Lock()
	c.pending[token] = id
	c.mu.Unlock()
	return token, nil
}

// DeclineDelete closes the gate without any call or state change.
func (c *Controller[E, R]) DeclineDelete(token uuid.UUID) error {
	_, ok := c.take(token)
	if !ok {
		return ErrUnknownToken
	}
	return nil
}

// ConfirmDelete issues the delete for the token's record and removes it from
// the cache once the service confirms. A token can be used once.
func (c *Controller[E, R]) ConfirmDelete(ctx context.Context, token uuid.UUID) error {
	id, ok := c.take(token)
	if !ok {
		return ErrUnknownToken
	}

	if err := c.gateway.Delete(ctx, id); err != nil {
		return c.fail(ctx, "delete", c.schema.Noun, err, false)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Remove(id)
	c.session.CancelIf(id)
	c.message = ""
	c.record(ctx, Mutation{Kind: c.schema.Kind, Op: OpDelete, ID: id})
	c.logger.Debug(ctx, "record deleted", "id", id)
	return nil
}

func (c *Controller[E, R]) take(token uuid.UUID) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.pending[token]
	delete(c.pending, token)
	return id, ok
}

// record must be called with mu held.
func (c *Controller[E, R]) record(ctx context.Context, m Mutation) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(ctx, m); err != nil {
		c.logger.Warn(ctx, "journal write failed", "op", m.Op, "id", m.ID, "error", err)
	}
}

// fail stores the user-visible message for err and returns err wrapped.
func (c *Controller[E, R]) fail(ctx context.Context, op, subject string, err error, withDetail bool) error {
	msg := Describe(op, subject, err, withDetail)

	c.mu.Lock()
	c.message = msg
	c.mu.Unlock()

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.logger.Debug(ctx, "local validation failed", "op", op, "field", verr.Field)
	} else {
		c.logger.Warn(ctx, "gateway call failed", "op", op, "error", err)
	}
	return fmt.Errorf("%s %s: %w", op, subject, err)
}

// Describe maps an error to the text shown to the user: the validation
// message, the service's detail when withDetail is set, otherwise a generic
// "failed to <op> <subject>".
func Describe(op, subject string, err error, withDetail bool) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	if withDetail {
		if detail, ok := client.DetailOf(err); ok {
			return detail
		}
	}
	return fmt.Sprintf("failed to %s %s", op, subject)
}
