package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/artlog/internal/client/catalog"
	"github.com/dmitrijs2005/artlog/internal/client/models"
	"github.com/dmitrijs2005/artlog/internal/client/repositories/journal"
	"github.com/dmitrijs2005/artlog/internal/dbx"
)

// JournalService writes confirmed cache mutations to the local journal and
// rebuilds caches from it. It implements catalog.Recorder.
type JournalService struct {
	db  *sql.DB
	now func() time.Time
}

func NewJournalService(db *sql.DB) *JournalService {
	return &JournalService{db: db, now: time.Now}
}

func (s *JournalService) repo(db dbx.DBTX) journal.Repository {
	return journal.NewSQLiteRepository(db)
}

// Record appends m. A load replaces the kind's previous rows in the same
// transaction.
func (s *JournalService) Record(ctx context.Context, m catalog.Mutation) error {
	e := &journal.Entry{Kind: m.Kind, Op: string(m.Op), EntityID: m.ID, RecordedAt: s.now()}
	if m.Payload != nil {
		b, err := json.Marshal(m.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", m.Op, err)
		}
		e.Payload = b
	}

	if m.Op != catalog.OpLoad {
		return s.repo(s.db).Append(ctx, e)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.ClearKind(ctx, m.Kind); err != nil {
			return err
		}
		return r.Append(ctx, e)
	})
}

// Entries returns the journal of kind in append order.
func (s *JournalService) Entries(ctx context.Context, kind string) ([]journal.Entry, error) {
	return s.repo(s.db).Entries(ctx, kind)
}

// Clear wipes the whole journal.
func (s *JournalService) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

// Replay rebuilds the cache of kind by applying its journal in order. The
// result equals the live cache as long as every mutation was recorded.
func Replay[E models.Entity](ctx context.Context, s *JournalService, kind string) (*catalog.Cache[E], error) {
	rows, err := s.Entries(ctx, kind)
	if err != nil {
		return nil, err
	}

	cache := catalog.NewCache[E]()
	for _, row := range rows {
		m, err := decodeMutation[E](row)
		if err != nil {
			return nil, err
		}
		// an update for a record that was no longer cached is a no-op live too
		cache.Apply(m)
	}
	return cache, nil
}

func decodeMutation[E models.Entity](row journal.Entry) (catalog.Mutation, error) {
	m := catalog.Mutation{Kind: row.Kind, Op: catalog.Op(row.Op), ID: row.EntityID}

	switch m.Op {
	case catalog.OpLoad:
		var items []E
		if err := json.Unmarshal(row.Payload, &items); err != nil {
			return m, fmt.Errorf("journal row %d: %w", row.Seq, err)
		}
		if items == nil {
			items = []E{}
		}
		m.Payload = items
	case catalog.OpCreate, catalog.OpUpdate:
		var e E
		if err := json.Unmarshal(row.Payload, &e); err != nil {
			return m, fmt.Errorf("journal row %d: %w", row.Seq, err)
		}
		m.Payload = e
	case catalog.OpDelete:
	default:
		return m, fmt.Errorf("journal row %d: unknown op %q", row.Seq, row.Op)
	}
	return m, nil
}
