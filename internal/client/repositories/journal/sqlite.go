package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/artlog/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, e *Entry) error {
	query := `insert into journal (kind, op, entity_id, payload, recorded_at) values (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		e.Kind, e.Op, e.EntityID, e.Payload, e.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get journal seq: %w", err)
	}
	e.Seq = seq
	return nil
}

func (r *SQLiteRepository) Entries(ctx context.Context, kind string) ([]Entry, error) {
	query := `select seq, kind, op, entity_id, payload, recorded_at from journal where kind=? order by seq`
	rows, err := r.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var (
			item Entry
			at   string
		)
		if err := rows.Scan(&item.Seq, &item.Kind, &item.Op, &item.EntityID, &item.Payload, &at); err != nil {
			return nil, err
		}
		item.RecordedAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("journal row %d: bad timestamp %q: %w", item.Seq, at, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) ClearKind(ctx context.Context, kind string) error {
	if _, err := r.db.ExecContext(ctx, `delete from journal where kind=?`, kind); err != nil {
		return fmt.Errorf("failed to clear journal of %s: %w", kind, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `delete from journal`); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	return nil
}
