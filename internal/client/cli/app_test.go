package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/config"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/client/services"
	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/dmitrijs2005/artlog/internal/server/httpapi"
	"github.com/dmitrijs2005/artlog/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_RejectsBadServerURL(t *testing.T) {
	_, err := NewApp(&config.Config{ServerURL: "localhost:8000"})
	require.Error(t, err)
}

func TestNewApp_WithoutJournal(t *testing.T) {
	a, err := NewApp(&config.Config{ServerURL: "http://127.0.0.1:1", RequestTimeout: time.Second})
	require.NoError(t, err)

	assert.Nil(t, a.db)
	assert.Len(t, a.views, 3)
	for kind, v := range a.views {
		assert.Equal(t, kind, v.Kind())
	}
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

// A scripted session against the development server, with the journal on.
func TestApp_RunScript(t *testing.T) {
	captureOutput(t, false)

	srv := httptest.NewServer(httpapi.NewRouter(store.New(), logging.Nop()))
	t.Cleanup(srv.Close)

	journalPath := filepath.Join(t.TempDir(), "journal.db")
	a, err := NewApp(&config.Config{
		ServerURL:      srv.URL,
		RequestTimeout: time.Second,
		JournalPath:    journalPath,
		LogLevel:       "error",
		LogFormat:      "text",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a.out = &out
	a.reader = rdr(strings.Join([]string{
		"login ada https://example.org/ada.png",
		"use artists",
		"form name Ada Lovelace",
		"form country UK",
		"form art_style Abstract",
		"add",
		"form name Ada Lovelace",
		"form country FR",
		"form art_style Cubism",
		"add",
		"use artworks",
		"choices artist_id",
		"form title Dawn",
		"form artist_id 1",
		"form year 1999",
		"add",
		"list",
		"use artists",
		"delete 1",
		"n",
		"exit",
	}, "\n"))

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Logged in as ada")
	assert.Contains(t, got, "Created 1")
	assert.Contains(t, got, "Error: name already exists")
	assert.Contains(t, got, "1  Ada Lovelace")
	assert.Contains(t, got, "Dawn, 1999, by Ada Lovelace")
	assert.Contains(t, got, "Not deleted")

	db, err := client.InitDatabase(context.Background(), journalPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	entries, err := services.NewJournalService(db).Entries(context.Background(), models.KindArtists)
	require.NoError(t, err)

	var ops []string
	for _, e := range entries {
		ops = append(ops, e.Op)
	}
	// the second "use artists" reloads and resets the kind
	assert.Equal(t, []string{"load"}, ops)

	entries, err = services.NewJournalService(db).Entries(context.Background(), models.KindArtworks)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "create", entries[1].Op)
}
