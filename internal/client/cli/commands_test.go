package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/artlog/internal/client/catalog"
	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/client/mocks"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gateways struct {
	artists     *mocks.MockGateway[models.Artist, models.ArtistRequest]
	artworks    *mocks.MockGateway[models.Artwork, models.ArtworkRequest]
	exhibitions *mocks.MockGateway[models.Exhibition, models.ExhibitionRequest]
}

// newCatalogApp wires views over gomock gateways the same way newViews wires
// them over HTTP collections.
func newCatalogApp(t *testing.T) (*App, gateways, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	g := gateways{
		artists:     mocks.NewMockGateway[models.Artist, models.ArtistRequest](ctrl),
		artworks:    mocks.NewMockGateway[models.Artwork, models.ArtworkRequest](ctrl),
		exhibitions: mocks.NewMockGateway[models.Exhibition, models.ExhibitionRequest](ctrl),
	}
	logger := logging.Nop()

	out := &bytes.Buffer{}
	a := &App{
		identity: &models.Identity{Username: "ada"},
		reader:   rdr(""),
		out:      out,
		views: map[string]view{
			models.KindArtists: newKindView(
				catalog.NewController(catalog.Artists, g.artists, logger),
				nil, formatArtist),
			models.KindArtworks: newKindView(
				catalog.NewController(catalog.Artworks, g.artworks, logger),
				map[string]refSource{models.KindArtists: catalog.NewResolver[models.Artist](g.artists)},
				formatArtwork),
			models.KindExhibitions: newKindView(
				catalog.NewController(catalog.Exhibitions, g.exhibitions, logger),
				map[string]refSource{models.KindArtworks: catalog.NewResolver[models.Artwork](g.artworks)},
				formatExhibition),
		},
	}
	return a, g, out
}

var ada = models.Artist{ID: 7, Name: "Ada", Country: "UK", ArtStyle: "Abstract"}

func useArtists(t *testing.T, a *App, g gateways, out *bytes.Buffer, items ...models.Artist) {
	t.Helper()
	g.artists.EXPECT().List(gomock.Any()).Return(items, nil)
	require.NoError(t, a.Use(context.Background(), []string{"artists"}))
	out.Reset()
}

func TestCommands_RequireSelectedCollection(t *testing.T) {
	a, _, out := newCatalogApp(t)

	require.ErrorIs(t, a.List(context.Background()), errNoView)
	require.ErrorIs(t, a.Add(context.Background()), errNoView)
	require.ErrorIs(t, a.Delete(context.Background(), []string{"1"}), errNoView)
	assert.Contains(t, out.String(), "No collection selected")
}

func TestUse(t *testing.T) {
	a, g, out := newCatalogApp(t)
	g.artists.EXPECT().List(gomock.Any()).Return([]models.Artist{ada}, nil)

	require.NoError(t, a.Use(context.Background(), []string{"Artist"}))

	assert.Contains(t, out.String(), "7  Ada  (UK, Abstract)")
	assert.Equal(t, "(ada artists)", a.getStatus())
}

func TestUse_UnknownAndMissing(t *testing.T) {
	a, _, out := newCatalogApp(t)

	require.NoError(t, a.Use(context.Background(), []string{"sculptures"}))
	require.NoError(t, a.Use(context.Background(), nil))

	assert.Contains(t, out.String(), "Unknown collection: sculptures")
	assert.Contains(t, out.String(), "Usage: use")
	assert.Nil(t, a.current)
}

func TestUse_FetchFailureStillSelects(t *testing.T) {
	a, g, out := newCatalogApp(t)
	g.artists.EXPECT().List(gomock.Any()).Return(nil, client.ErrUnavailable)

	require.NoError(t, a.Use(context.Background(), []string{"artists"}))

	assert.Contains(t, out.String(), "Error: failed to fetch artists")
	assert.Contains(t, out.String(), "No artists yet.")
	assert.NotNil(t, a.current)
}

func TestUse_ArtworksResolveArtistNames(t *testing.T) {
	a, g, out := newCatalogApp(t)
	desc := "morning light"
	g.artworks.EXPECT().List(gomock.Any()).Return([]models.Artwork{
		{ID: 3, Title: "Dawn", ArtistID: 7, Year: 1999, Description: &desc},
		{ID: 4, Title: "Dusk", ArtistID: 8, Year: 2001},
	}, nil)
	g.artists.EXPECT().List(gomock.Any()).Return([]models.Artist{ada}, nil)

	require.NoError(t, a.Use(context.Background(), []string{"artworks"}))

	assert.Contains(t, out.String(), "Dawn, 1999, by Ada: morning light")
	assert.Contains(t, out.String(), "Dusk, 2001, by #8")

	out.Reset()
	require.NoError(t, a.Choices(context.Background(), []string{"artist_id"}))
	assert.Contains(t, out.String(), "7  Ada")
	assert.NotContains(t, out.String(), catalog.NoneSelected)
}

func TestUse_ExhibitionsOfferSentinel(t *testing.T) {
	a, g, out := newCatalogApp(t)
	g.exhibitions.EXPECT().List(gomock.Any()).Return([]models.Exhibition{}, nil)
	g.artworks.EXPECT().List(gomock.Any()).Return([]models.Artwork{{ID: 3, Title: "Dawn", ArtistID: 7, Year: 1999}}, nil)

	require.NoError(t, a.Use(context.Background(), []string{"exhibitions"}))
	out.Reset()

	require.NoError(t, a.Choices(context.Background(), []string{"artwork_id"}))
	assert.Contains(t, out.String(), catalog.NoneSelected)
	assert.Contains(t, out.String(), "3  Dawn (ID: 3)")
}

func TestChoices_RejectsPlainField(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)

	require.Error(t, a.Choices(context.Background(), []string{"name"}))
	assert.Contains(t, out.String(), "name is not a reference field")
}

func TestFormAndAdd(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)

	require.NoError(t, a.Form(context.Background(), []string{"name", "Ada", "Lovelace"}))
	require.NoError(t, a.Form(context.Background(), []string{"country", "UK"}))
	require.NoError(t, a.Form(context.Background(), []string{"art_style", "Abstract"}))

	g.artists.EXPECT().
		Create(gomock.Any(), models.ArtistRequest{Name: "Ada Lovelace", Country: "UK", ArtStyle: "Abstract"}).
		Return(models.Artist{ID: 7, Name: "Ada Lovelace", Country: "UK", ArtStyle: "Abstract"}, nil)

	require.NoError(t, a.Add(context.Background()))
	assert.Contains(t, out.String(), "Created 7")

	out.Reset()
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "Ada Lovelace")
}

func TestForm_UnknownFieldAndPrint(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)

	require.ErrorIs(t, a.Form(context.Background(), []string{"nickname", "x"}), catalog.ErrUnknownField)
	assert.Contains(t, out.String(), "unknown field: nickname")

	out.Reset()
	require.NoError(t, a.Form(context.Background(), nil))
	assert.Contains(t, out.String(), "New artist:")
	assert.Contains(t, out.String(), "art_style:")
}

func TestAdd_ServiceDetailShown(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)
	for k, v := range map[string]string{"name": "Ada", "country": "UK", "art_style": "Pop"} {
		require.NoError(t, a.Form(context.Background(), []string{k, v}))
	}

	g.artists.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Artist{}, &client.StatusError{StatusCode: 409, Detail: "name already exists"})

	require.Error(t, a.Add(context.Background()))
	assert.Equal(t, "Error: name already exists\n", out.String())
}

func TestAdd_ValidationMakesNoCall(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)

	require.Error(t, a.Add(context.Background()))
	assert.Equal(t, "Error: name is required\n", out.String())
}

func TestMessage_DoesNotLeakIntoNextCommand(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out)
	require.Error(t, a.Add(context.Background()))
	out.Reset()

	require.ErrorIs(t, a.Edit(context.Background(), []string{"99"}), catalog.ErrNotFound)
	assert.Contains(t, out.String(), "artist 99: record not found")
	assert.NotContains(t, out.String(), "is required")
}

func TestEditSetSave(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)

	require.NoError(t, a.Edit(context.Background(), []string{"7"}))
	assert.Contains(t, out.String(), "Editing artist 7:")
	assert.Equal(t, "(ada artists, editing 7)", a.getStatus())

	require.NoError(t, a.Set(context.Background(), []string{"art_style", "Op", "Art"}))

	out.Reset()
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "*    7  Ada")

	g.artists.EXPECT().
		Update(gomock.Any(), int64(7), models.ArtistRequest{Name: "Ada", Country: "UK", ArtStyle: "Op Art"}).
		Return(models.Artist{ID: 7, Name: "Ada", Country: "UK", ArtStyle: "Op Art"}, nil)

	out.Reset()
	require.NoError(t, a.Save(context.Background()))
	assert.Equal(t, "Saved\n", out.String())
	assert.Equal(t, "(ada artists)", a.getStatus())

	out.Reset()
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "(UK, Op Art)")
}

func TestSave_FailureKeepsDraft(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)
	require.NoError(t, a.Edit(context.Background(), []string{"7"}))
	require.NoError(t, a.Set(context.Background(), []string{"name", "Bo"}))

	g.artists.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(models.Artist{}, client.ErrUnavailable)

	out.Reset()
	require.Error(t, a.Save(context.Background()))
	assert.Equal(t, "Error: failed to update artist\n", out.String())
	assert.Equal(t, "(ada artists, editing 7)", a.getStatus())
}

func TestSaveAndSetWithoutEdit(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)

	require.ErrorIs(t, a.Save(context.Background()), catalog.ErrNotEditing)
	require.ErrorIs(t, a.Set(context.Background(), []string{"name", "Bo"}), catalog.ErrNotEditing)
}

func TestCancel(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)
	require.NoError(t, a.Edit(context.Background(), []string{"7"}))

	require.NoError(t, a.Cancel(context.Background()))
	assert.Equal(t, "(ada artists)", a.getStatus())
}

func TestEdit_BadID(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)

	require.Error(t, a.Edit(context.Background(), []string{"seven"}))
	require.Error(t, a.Edit(context.Background(), nil))
	assert.Contains(t, out.String(), "Not an id: seven")
	assert.Contains(t, out.String(), "Usage:")
}

func TestDelete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		stubConfirm(t, false)
		a, g, out := newCatalogApp(t)
		useArtists(t, a, g, out, ada)

		require.NoError(t, a.Delete(context.Background(), []string{"7"}))
		assert.Equal(t, "Not deleted\n", out.String())

		out.Reset()
		require.NoError(t, a.List(context.Background()))
		assert.Contains(t, out.String(), "Ada")
	})

	t.Run("confirmed", func(t *testing.T) {
		stubConfirm(t, true)
		a, g, out := newCatalogApp(t)
		useArtists(t, a, g, out, ada)
		g.artists.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

		require.NoError(t, a.Delete(context.Background(), []string{"7"}))
		assert.Equal(t, "Deleted 7\n", out.String())

		out.Reset()
		require.NoError(t, a.List(context.Background()))
		assert.Equal(t, "No artists yet.\n", out.String())
	})

	t.Run("failure keeps record", func(t *testing.T) {
		stubConfirm(t, true)
		a, g, out := newCatalogApp(t)
		useArtists(t, a, g, out, ada)
		g.artists.EXPECT().Delete(gomock.Any(), int64(7)).Return(errors.New("reset by peer"))

		require.Error(t, a.Delete(context.Background(), []string{"7"}))
		assert.Equal(t, "Error: failed to delete artist\n", out.String())

		out.Reset()
		require.NoError(t, a.List(context.Background()))
		assert.Contains(t, out.String(), "Ada")
	})

	t.Run("unknown id asks nothing", func(t *testing.T) {
		orig := confirm
		t.Cleanup(func() { confirm = orig })
		asked := false
		confirm = func(_ *bufio.Reader, _ string, _ io.Writer) bool {
			asked = true
			return true
		}

		a, g, out := newCatalogApp(t)
		useArtists(t, a, g, out, ada)

		require.ErrorIs(t, a.Delete(context.Background(), []string{"8"}), catalog.ErrNotFound)
		assert.False(t, asked)
	})
}

func TestRefresh(t *testing.T) {
	a, g, out := newCatalogApp(t)
	useArtists(t, a, g, out, ada)

	g.artists.EXPECT().List(gomock.Any()).Return(nil, client.ErrUnavailable)
	require.Error(t, a.Refresh(context.Background()))
	assert.Equal(t, "Error: failed to fetch artists\n", out.String())

	g.artists.EXPECT().List(gomock.Any()).Return([]models.Artist{ada, {ID: 8, Name: "Bo", Country: "SE", ArtStyle: "Pop"}}, nil)
	out.Reset()
	require.NoError(t, a.Refresh(context.Background()))
	assert.Contains(t, out.String(), "Bo  (SE, Pop)")
}
