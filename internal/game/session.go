package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines/internal/mines"
)

var ErrGameOver = errors.New("game is over")

// Session drives one [mines.Board] for one player and keeps the bookkeeping
// the board itself does not: whether the game ended, and when.
type Session struct {
	ID    uuid.UUID
	Board *mines.Board
	Params

	Dead, Won bool
	Moves     int
	StartedAt time.Time /* first opened cell */
	EndedAt   time.Time

	now func() time.Time
	log *logrus.Logger
}

type SessionOption = func(*Session)

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

func WithLogger(log *logrus.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

func NewSession(p Params, r *rand.Rand, options ...SessionOption) (*Session, error) {
	board, err := mines.New(p.Width, p.Height, p.MineCount, r)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:     uuid.New(),
		Board:  board,
		Params: p,
		now:    time.Now,
		log:    mines.Log,
	}
	for _, op := range options {
		op(s)
	}
	s.entry().Debug("new session")
	return s, nil
}

func (s *Session) entry() *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"session":    s.ID.String(),
		"width":      s.Width,
		"height":     s.Height,
		"mine_count": s.MineCount,
	})
}

func (s *Session) Finished() bool {
	return s.Dead || s.Won
}

// Open reveals a cell. Moves that change nothing on the board are not
// counted.
func (s *Session) Open(x, y int) (mines.Outcome, error) {
	if s.Finished() {
		return mines.Ignored, ErrGameOver
	}

	outcome := s.Board.Reveal(x, y)
	if outcome == mines.Ignored {
		return outcome, nil
	}

	if s.Moves == 0 {
		s.StartedAt = s.now().UTC()
	}
	s.Moves++

	switch {
	case outcome == mines.HitMine:
		s.Dead = true
	case s.Board.HasWon():
		s.Won = true
	}

	if s.Finished() {
		s.EndedAt = s.now().UTC()
		s.entry().WithFields(logrus.Fields{
			"won":      s.Won,
			"moves":    s.Moves,
			"playtime": s.Playtime().String(),
		}).Info("game over")
	}

	return outcome, nil
}

func (s *Session) Forfeit() {
	if s.Finished() {
		return
	}
	s.Dead = true
	s.EndedAt = s.now().UTC()
	if s.StartedAt.IsZero() {
		s.StartedAt = s.EndedAt
	}
	s.entry().Info("forfeit")
}

// Restart starts a new game on the same board.
func (s *Session) Restart() {
	s.Board.Reset()
	s.ID = uuid.New()
	s.Dead, s.Won = false, false
	s.Moves = 0
	s.StartedAt, s.EndedAt = time.Time{}, time.Time{}
	s.entry().Debug("restart")
}

func (s *Session) Playtime() time.Duration {
	switch {
	case s.StartedAt.IsZero():
		return 0
	case s.Finished():
		return s.EndedAt.Sub(s.StartedAt)
	default:
		return s.now().Sub(s.StartedAt)
	}
}

// Grid is the board as the player should see it; a finished game is shown
// in full.
func (s *Session) Grid() mines.Grid {
	return s.Board.Snapshot(s.Finished())
}

// Record returns the summary of a finished game. ok is false while the game
// is still running or if it ended before any cell was opened.
func (s *Session) Record() (r Record, ok bool) {
	if !s.Finished() || s.Moves == 0 {
		return Record{}, false
	}
	r = Record{
		ID:        s.ID,
		Params:    s.Params,
		Won:       s.Won,
		Moves:     s.Moves,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		Playtime:  s.Playtime(),
	}
	return r, true
}
