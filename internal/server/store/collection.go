package store

import (
	"sync"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// Collection holds the records of one kind in creation order.
type Collection[E models.Entity, R any] struct {
	noun string

	// build turns a validated request into the stored record.
	build func(id int64, req R) E
	// check runs with the collection locked; id is 0 for a create.
	check func(id int64, req R) error

	mu     sync.RWMutex
	items  []E
	nextID int64
}

func newCollection[E models.Entity, R any](noun string, build func(int64, R) E, check func(int64, R) error) *Collection[E, R] {
	return &Collection[E, R]{noun: noun, build: build, check: check, nextID: 1}
}

func (c *Collection[E, R]) Noun() string { return c.noun }

func (c *Collection[E, R]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[E, R]) Get(id int64) (E, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], nil
	}
	var zero E
	return zero, &NotFoundError{Noun: c.noun, ID: id}
}

func (c *Collection[E, R]) Exists(id int64) bool {
	_, err := c.Get(id)
	return err == nil
}

func (c *Collection[E, R]) Create(req R) (E, error) {
	var zero E
	if err := models.Validate(req); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.runCheck(0, req); err != nil {
		return zero, err
	}
	e := c.build(c.nextID, req)
	c.nextID++
	c.items = append(c.items, e)
	return e, nil
}

func (c *Collection[E, R]) Update(id int64, req R) (E, error) {
	var zero E
	if err := models.Validate(req); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return zero, &NotFoundError{Noun: c.noun, ID: id}
	}
	if err := c.runCheck(id, req); err != nil {
		return zero, err
	}
	e := c.build(id, req)
	c.items[i] = e
	return e, nil
}

func (c *Collection[E, R]) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return &NotFoundError{Noun: c.noun, ID: id}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Collection[E, R]) runCheck(id int64, req R) error {
	if c.check == nil {
		return nil
	}
	return c.check(id, req)
}

// index must be called with mu held.
func (c *Collection[E, R]) index(id int64) int {
	for i, e := range c.items {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}
