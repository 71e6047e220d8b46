package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// NoneSelected is the label of the sentinel choice offered for optional
// foreign-key fields.
const NoneSelected = "none selected"

// Choice is one option of a dependent selection list. The sentinel has an
// empty Value, which submits as an absent reference.
type Choice struct {
	Value string
	Label string
}

func (c Choice) IsSentinel() bool { return c.Value == "" }

// Resolver is a read-only copy of a referenced kind's collection. It is
// refreshed only by Load and never by the referenced kind's controller.
type Resolver[E models.Entity] struct {
	source client.Lister[E]
	cache  *Cache[E]

	mu     sync.Mutex
	loaded bool
}

func NewResolver[E models.Entity](source client.Lister[E]) *Resolver[E] {
	return &Resolver[E]{source: source, cache: NewCache[E]()}
}

// Load fetches the referenced collection. On failure the previous copy is
// kept.
func (r *Resolver[E]) Load(ctx context.Context) error {
	items, err := r.source.List(ctx)
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}
	r.cache.Load(items)

	r.mu.Lock()
	r.loaded = true
	r.mu.Unlock()
	return nil
}

func (r *Resolver[E]) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

// Choices lists the selectable references for f. Optional fields get the
// NoneSelected sentinel first; mandatory fields require a concrete choice.
func (r *Resolver[E]) Choices(f Field) []Choice {
	items := r.cache.Items()

	choices := make([]Choice, 0, len(items)+1)
	if f.Optional {
		choices = append(choices, Choice{Label: NoneSelected})
	}
	for _, e := range items {
		choices = append(choices, Choice{Value: strconv.FormatInt(e.EntityID(), 10), Label: e.Label()})
	}
	return choices
}

// Label returns the display label of the referenced id.
func (r *Resolver[E]) Label(id int64) (string, bool) {
	e, ok := r.cache.Get(id)
	if !ok {
		return "", false
	}
	return e.Label(), true
}
