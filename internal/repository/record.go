package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vancomm/mines/internal/game"
)

type gameRecord struct {
	GameRecordId uuid.UUID `db:"game_record_id"`
	Width        int       `db:"width"`
	Height       int       `db:"height"`
	MineCount    int       `db:"mine_count"`
	Won          bool      `db:"won"`
	Moves        int       `db:"moves"`
	StartedAt    time.Time `db:"started_at"`
	EndedAt      time.Time `db:"ended_at"`
	PlaytimeMs   float64   `db:"playtime_ms"`
}

func (r gameRecord) Record() game.Record {
	return game.Record{
		ID:        r.GameRecordId,
		Params:    game.Params{Width: r.Width, Height: r.Height, MineCount: r.MineCount},
		Won:       r.Won,
		Moves:     r.Moves,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		Playtime:  time.Duration(r.PlaytimeMs * float64(time.Millisecond)),
	}
}

func (q *Queries) SaveRecord(ctx context.Context, r game.Record) error {
	_, err := q.db.Exec(
		ctx,
		`INSERT INTO game_record (
			game_record_id, width, height, mine_count, won, moves, started_at, ended_at
		)
		VALUES (
			@game_record_id, @width, @height, @mine_count, @won, @moves, @started_at, @ended_at
		);`,
		pgx.NamedArgs{
			"game_record_id": r.ID,
			"width":          r.Width,
			"height":         r.Height,
			"mine_count":     r.MineCount,
			"won":            r.Won,
			"moves":          r.Moves,
			"started_at":     r.StartedAt,
			"ended_at":       r.EndedAt,
		},
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return game.ErrDuplicateRecord
	}
	return err
}

type highscoreFilter game.HighscoreFilter

func (f highscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := []string{"won = true"}
	args := pgx.NamedArgs{}
	if f.Params != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"mine_count = @mine_count",
		)
		args["width"] = f.Params.Width
		args["height"] = f.Params.Height
		args["mine_count"] = f.Params.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

func (f highscoreFilter) Query() (string, pgx.NamedArgs) {
	query := `
	SELECT
		game_record_id,
		width,
		height,
		mine_count,
		won,
		moves,
		started_at,
		ended_at,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_record
	WHERE `

	whereClause, args := f.WhereClause()
	query += whereClause
	query += " ORDER BY playtime_ms, ended_at"

	if f.Limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = f.Limit
	}

	return query + ";", args
}

func (q *Queries) Highscores(
	ctx context.Context, filter game.HighscoreFilter,
) ([]game.Record, error) {
	query, args := highscoreFilter(filter).Query()
	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	scores, err := pgx.CollectRows(rows, pgx.RowToStructByName[gameRecord])
	if err != nil {
		return nil, err
	}
	records := make([]game.Record, len(scores))
	for i, s := range scores {
		records[i] = s.Record()
	}
	return records, nil
}
