package httpapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/artlog/internal/client/catalog"
	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/dmitrijs2005/artlog/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The client controllers driven against the real router.
func TestGateway_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(NewRouter(store.New(), logging.Nop()))
	t.Cleanup(srv.Close)

	hc, err := client.NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	artists := catalog.NewController(catalog.Artists,
		client.NewCollection[models.Artist, models.ArtistRequest](hc, models.KindArtists), logging.Nop())

	for k, v := range map[string]string{"name": "Ada", "country": "UK", "art_style": "Abstract"} {
		require.NoError(t, artists.SetFormField(k, v))
	}
	ada, err := artists.Create(ctx)
	require.NoError(t, err)

	for k, v := range map[string]string{"name": "Ada", "country": "FR", "art_style": "Cubism"} {
		require.NoError(t, artists.SetFormField(k, v))
	}
	_, err = artists.Create(ctx)
	require.Error(t, err)
	assert.Equal(t, "name already exists", artists.Message())
	assert.Equal(t, "FR", artists.Form()["country"])
	assert.Len(t, artists.Items(), 1)

	artworkGateway := client.NewCollection[models.Artwork, models.ArtworkRequest](hc, models.KindArtworks)
	artworks := catalog.NewController(catalog.Artworks, artworkGateway, logging.Nop())
	refs := catalog.NewResolver[models.Artist](client.NewCollection[models.Artist, models.ArtistRequest](hc, models.KindArtists))
	require.NoError(t, refs.Load(ctx))

	field, _ := catalog.Artworks.Field("artist_id")
	choices := refs.Choices(field)
	require.Len(t, choices, 1)
	assert.Equal(t, "Ada", choices[0].Label)

	require.NoError(t, artworks.SetFormField("title", "Dawn"))
	require.NoError(t, artworks.SetFormField("artist_id", choices[0].Value))
	require.NoError(t, artworks.SetFormField("year", "1999"))
	w, err := artworks.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, w.ArtistID)
	assert.Nil(t, w.Description)

	require.NoError(t, artworks.BeginEdit(w.ID))
	require.NoError(t, artworks.UpdateField("description", "morning light"))
	w, err = artworks.CommitEdit(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, w.Description)
	assert.Equal(t, "morning light", *w.Description)

	token, err := artworks.RequestDelete(w.ID)
	require.NoError(t, err)
	require.NoError(t, artworks.ConfirmDelete(ctx, token))

	require.NoError(t, artworks.Refresh(ctx))
	assert.Empty(t, artworks.Items())
}
