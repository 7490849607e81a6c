package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vancomm/mines/internal/game"
)

const recordsTable = "game_records"

// Records keeps finished-game records in a local sqlite file, keyed by
// record ID.
type Records struct {
	db    *sql.DB
	store *Store
}

var _ game.RecordStore = (*Records)(nil)

// OpenRecords opens (or creates) the sqlite database at path, creating its
// parent directory when missing.
func OpenRecords(ctx context.Context, path string) (*Records, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	r, err := NewRecords(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func NewRecords(ctx context.Context, db *sql.DB) (*Records, error) {
	s, err := New(ctx, db, recordsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create records store: %w", err)
	}
	return &Records{db: db, store: s}, nil
}

func (r *Records) SaveRecord(ctx context.Context, rec game.Record) error {
	err := r.store.Insert(ctx, rec.ID.String(), rec)
	if errors.Is(err, ErrExists) {
		return game.ErrDuplicateRecord
	}
	return err
}

func (r *Records) Highscores(ctx context.Context, filter game.HighscoreFilter) ([]game.Record, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	var records []game.Record
	for _, key := range keys {
		var rec game.Record
		if err := r.store.Get(ctx, key, &rec); err != nil {
			return nil, fmt.Errorf("failed to read record %s: %w", key, err)
		}
		if filter.Match(rec) {
			records = append(records, rec)
		}
	}

	slices.SortFunc(records, func(a, b game.Record) int {
		return cmp.Or(
			cmp.Compare(a.Playtime, b.Playtime),
			a.EndedAt.Compare(b.EndedAt),
		)
	})
	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[:filter.Limit]
	}
	return records, nil
}

func (r *Records) Close() error {
	return r.db.Close()
}
