package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/mines/internal/game"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	s, err := New(context.Background(), openTestDB(t, path), "records")
	require.NoError(t, err)
	return s, path
}

func testRecord() game.Record {
	start := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	return game.Record{
		Params:    game.Params{Width: 16, Height: 16, MineCount: 40},
		ID:        uuid.New(),
		Won:       true,
		Moves:     52,
		StartedAt: start,
		EndedAt:   start.Add(95 * time.Second),
		Playtime:  95 * time.Second,
	}
}

func TestStoreBadName(t *testing.T) {
	for _, name := range []string{"", "drop table", "x;--", "t1"} {
		_, err := New(context.Background(), nil, name)
		assert.ErrorIs(t, err, ErrBadName, "name %q", name)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s, _ := setupTestStore(t)

	var rec game.Record
	err := s.Get(context.Background(), uuid.NewString(), &rec)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRecordRoundTrip(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	want := testRecord()

	require.NoError(t, s.Insert(ctx, want.ID.String(), want))

	var got game.Record
	require.NoError(t, s.Get(ctx, want.ID.String(), &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Params, got.Params)
	assert.Equal(t, want.Won, got.Won)
	assert.Equal(t, want.Moves, got.Moves)
	assert.Equal(t, want.Playtime, got.Playtime)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.True(t, want.EndedAt.Equal(got.EndedAt))
}

func TestStoreInsertKeepsFirstValue(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	first := testRecord()
	second := first
	second.Won = false
	second.Moves = 1

	require.NoError(t, s.Insert(ctx, first.ID.String(), first))
	assert.ErrorIs(t, s.Insert(ctx, first.ID.String(), second), ErrExists)

	var got game.Record
	require.NoError(t, s.Get(ctx, first.ID.String(), &got))
	assert.True(t, got.Won)
	assert.Equal(t, 52, got.Moves)
}

func TestStoreKeysAfterReopen(t *testing.T) {
	s, path := setupTestStore(t)
	ctx := context.Background()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	var want []string
	for range 3 {
		rec := testRecord()
		require.NoError(t, s.Insert(ctx, rec.ID.String(), rec))
		want = append(want, rec.ID.String())
	}

	reopened, err := New(ctx, openTestDB(t, path), "records")
	require.NoError(t, err)
	keys, err = reopened.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, keys)
}
