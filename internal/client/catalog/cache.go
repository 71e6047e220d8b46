package catalog

import (
	"sync"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// Cache is the ordered local collection of one entity kind, most recently
// created first. Ids are unique within a cache. It is safe for concurrent use.
type Cache[E models.Entity] struct {
	mu    sync.RWMutex
	items []E
}

func NewCache[E models.Entity]() *Cache[E] {
	return &Cache[E]{}
}

// Load replaces the whole collection with items, keeping their order.
func (c *Cache[E]) Load(items []E) {
	cp := make([]E, len(items))
	copy(cp, items)

	c.mu.Lock()
	c.items = cp
	c.mu.Unlock()
}

// InsertFront prepends e. An entity already cached under the same id, for
// example one a refresh returned before the create was confirmed, is dropped
// first so ids stay unique.
func (c *Cache[E]) InsertFront(e E) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]E, 0, len(c.items)+1)
	items = append(items, e)
	for _, old := range c.items {
		if old.EntityID() != e.EntityID() {
			items = append(items, old)
		}
	}
	c.items = items
}

// Replace swaps the entity with the given id for e, keeping its position.
// It reports false and changes nothing when id is absent.
func (c *Cache[E]) Replace(id int64, e E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i] = e
	return true
}

// Remove deletes the entity with the given id, reporting whether it existed.
func (c *Cache[E]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return false
	}
	items := make([]E, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	c.items = append(items, c.items[i+1:]...)
	return true
}

// Get returns the entity with the given id.
func (c *Cache[E]) Get(id int64) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero E
	return zero, false
}

// Items returns a copy of the collection in cache order.
func (c *Cache[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]E, len(c.items))
	copy(cp, c.items)
	return cp
}

func (c *Cache[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[E]) index(id int64) int {
	for i, e := range c.items {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

// Apply replays a confirmed mutation. Payloads must be E for create and
// update and []E for load; anything else is ignored and reported as false.
func (c *Cache[E]) Apply(m Mutation) bool {
	switch m.Op {
	case OpLoad:
		items, ok := m.Payload.([]E)
		if ok {
			c.Load(items)
		}
		return ok
	case OpCreate:
		e, ok := m.Payload.(E)
		if ok {
			c.InsertFront(e)
		}
		return ok
	case OpUpdate:
		e, ok := m.Payload.(E)
		return ok && c.Replace(m.ID, e)
	case OpDelete:
		return c.Remove(m.ID)
	}
	return false
}
