package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/mines/internal/database"
	"github.com/vancomm/mines/internal/game"
)

func TestWhereClause(t *testing.T) {
	clause, args := highscoreFilter{}.WhereClause()
	assert.Equal(t, "won = true", clause)
	assert.Empty(t, args)

	clause, args = highscoreFilter{
		Params: &game.Params{Width: 9, Height: 9, MineCount: 10},
	}.WhereClause()
	assert.Equal(t, "won = true AND width = @width AND height = @height AND mine_count = @mine_count", clause)
	assert.Equal(t, pgx.NamedArgs{"width": 9, "height": 9, "mine_count": 10}, args)
}

func TestHighscoreQueryLimit(t *testing.T) {
	query, args := highscoreFilter{Limit: 5}.Query()
	assert.Contains(t, query, "ORDER BY playtime_ms, ended_at LIMIT @limit;")
	assert.Equal(t, 5, args["limit"])

	query, args = highscoreFilter{}.Query()
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, args, "limit")
}

func setupTestQueries(t *testing.T) *Queries {
	t.Helper()
	url, ok := os.LookupEnv("DATABASE_URL")
	if !ok {
		t.Skip("DATABASE_URL not set")
	}
	require.NoError(t, database.Migrate(url, database.Migrations))

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	_, err = pool.Exec(context.Background(), "TRUNCATE game_record;")
	require.NoError(t, err)

	q := NewFromPool(pool)
	t.Cleanup(func() { q.Close() })
	return q
}

func TestSaveAndRank(t *testing.T) {
	q := setupTestQueries(t)
	ctx := context.Background()
	start := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	record := func(p game.Params, won bool, playtime time.Duration) game.Record {
		return game.Record{
			ID:        uuid.New(),
			Params:    p,
			Won:       won,
			Moves:     10,
			StartedAt: start,
			EndedAt:   start.Add(playtime),
		}
	}
	beginner := game.Params{Width: 9, Height: 9, MineCount: 10}
	expert := game.Params{Width: 30, Height: 16, MineCount: 99}

	slow := record(beginner, true, 90*time.Second)
	fast := record(beginner, true, 30*time.Second)
	lost := record(beginner, false, 5*time.Second)
	other := record(expert, true, 10*time.Second)
	for _, r := range []game.Record{slow, fast, lost, other} {
		require.NoError(t, q.SaveRecord(ctx, r))
	}

	assert.ErrorIs(t, q.SaveRecord(ctx, fast), game.ErrDuplicateRecord)

	scores, err := q.Highscores(ctx, game.HighscoreFilter{Params: &beginner})
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, fast.ID, scores[0].ID)
	assert.Equal(t, 30*time.Second, scores[0].Playtime)
	assert.Equal(t, slow.ID, scores[1].ID)

	scores, err = q.Highscores(ctx, game.HighscoreFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, other.ID, scores[0].ID)
}
