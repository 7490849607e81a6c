package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateRecord = errors.New("record already saved")

// Record summarizes a finished game. It holds no board state.
type Record struct {
	Params
	ID        uuid.UUID     `json:"id"`
	Won       bool          `json:"won"`
	Moves     int           `json:"moves"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Playtime  time.Duration `json:"playtime"`
}

type HighscoreFilter struct {
	Params *Params
	Limit  int
}

// Match reports whether r belongs on a highscore table for f.
func (f HighscoreFilter) Match(r Record) bool {
	if !r.Won {
		return false
	}
	return f.Params == nil || *f.Params == r.Params
}

type RecordStore interface {
	SaveRecord(ctx context.Context, r Record) error
	// Highscores returns won games, fastest first.
	Highscores(ctx context.Context, f HighscoreFilter) ([]Record, error)
	Close() error
}

// NopStore drops every record.
type NopStore struct{}

func (NopStore) SaveRecord(context.Context, Record) error { return nil }

func (NopStore) Highscores(context.Context, HighscoreFilter) ([]Record, error) {
	return nil, nil
}

func (NopStore) Close() error { return nil }
