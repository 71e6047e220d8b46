package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/artlog/internal/client/catalog"
	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/config"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/client/services"
	"github.com/dmitrijs2005/artlog/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService services.AuthService
	views       map[string]view
	current     view
	identity    *models.Identity
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	hc, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	var (
		db      *sql.DB
		journal *services.JournalService
		opts    []catalog.Option
	)
	if c.JournalPath != "" {
		db, err = client.InitDatabase(ctx, c.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("error initializing journal: %w", err)
		}
		journal = services.NewJournalService(db)
		opts = append(opts, catalog.WithRecorder(journal))
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		authService: services.NewAuthService(hc, journal),
		views:       newViews(hc, logger, opts...),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// newViews builds one view per kind. Artworks reference artists and
// exhibitions reference artworks; each view gets its own resolver copy.
func newViews(hc *client.HTTPClient, logger logging.Logger, opts ...catalog.Option) map[string]view {
	artists := client.NewCollection[models.Artist, models.ArtistRequest](hc, models.KindArtists)
	artworks := client.NewCollection[models.Artwork, models.ArtworkRequest](hc, models.KindArtworks)
	exhibitions := client.NewCollection[models.Exhibition, models.ExhibitionRequest](hc, models.KindExhibitions)

	return map[string]view{
		models.KindArtists: newKindView(
			catalog.NewController(catalog.Artists, artists, logger, opts...),
			nil, formatArtist),
		models.KindArtworks: newKindView(
			catalog.NewController(catalog.Artworks, artworks, logger, opts...),
			map[string]refSource{models.KindArtists: catalog.NewResolver[models.Artist](artists)},
			formatArtwork),
		models.KindExhibitions: newKindView(
			catalog.NewController(catalog.Exhibitions, exhibitions, logger, opts...),
			map[string]refSource{models.KindArtworks: catalog.NewResolver[models.Artwork](artworks)},
			formatExhibition),
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	printlnFn("Welcome to ArtLog (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) getStatus() string {
	var parts []string
	if a.identity != nil {
		parts = append(parts, a.identity.Username)
	}
	if a.current != nil {
		parts = append(parts, a.current.Status())
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}
