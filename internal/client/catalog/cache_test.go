package catalog

import (
	"testing"

	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[E models.Entity](items []E) []int64 {
	out := make([]int64, len(items))
	for i, e := range items {
		out[i] = e.EntityID()
	}
	return out
}

func TestCache_Mutators(t *testing.T) {
	c := NewCache[models.Artist]()
	c.Load([]models.Artist{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	c.InsertFront(models.Artist{ID: 3, Name: "c"})
	assert.Equal(t, []int64{3, 1, 2}, ids(c.Items()))

	require.True(t, c.Replace(1, models.Artist{ID: 1, Name: "a2"}))
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a2", got.Name)
	assert.Equal(t, []int64{3, 1, 2}, ids(c.Items()), "replace keeps position")

	require.True(t, c.Remove(3))
	assert.Equal(t, []int64{1, 2}, ids(c.Items()))

	assert.False(t, c.Replace(99, models.Artist{ID: 99}))
	assert.False(t, c.Remove(99))
	assert.Equal(t, 2, c.Len())
}

func TestCache_InsertFrontKeepsIDsUnique(t *testing.T) {
	c := NewCache[models.Artist]()
	c.Load([]models.Artist{{ID: 1, Name: "a"}, {ID: 7, Name: "stale"}, {ID: 2, Name: "b"}})

	c.InsertFront(models.Artist{ID: 7, Name: "fresh"})
	assert.Equal(t, []int64{7, 1, 2}, ids(c.Items()))

	got, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, "fresh", got.Name)

	require.True(t, c.Remove(7))
	_, ok = c.Get(7)
	assert.False(t, ok)

	require.True(t, c.Apply(Mutation{Op: OpCreate, ID: 1, Payload: models.Artist{ID: 1, Name: "a"}}))
	assert.Equal(t, []int64{1, 2}, ids(c.Items()))
}

func TestCache_ItemsIsACopy(t *testing.T) {
	src := []models.Artist{{ID: 1, Name: "a"}}
	c := NewCache[models.Artist]()
	c.Load(src)
	src[0].Name = "changed"

	items := c.Items()
	items[0].Name = "changed too"

	got, _ := c.Get(1)
	assert.Equal(t, "a", got.Name)
}

func TestCache_Apply(t *testing.T) {
	c := NewCache[models.Artist]()

	assert.True(t, c.Apply(Mutation{Op: OpLoad, Payload: []models.Artist{{ID: 1}}}))
	assert.True(t, c.Apply(Mutation{Op: OpCreate, ID: 2, Payload: models.Artist{ID: 2}}))
	assert.True(t, c.Apply(Mutation{Op: OpUpdate, ID: 1, Payload: models.Artist{ID: 1, Name: "x"}}))
	assert.True(t, c.Apply(Mutation{Op: OpDelete, ID: 2}))
	assert.False(t, c.Apply(Mutation{Op: OpCreate, Payload: "wrong type"}))

	assert.Equal(t, []models.Artist{{ID: 1, Name: "x"}}, c.Items())
}
