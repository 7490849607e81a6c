package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines/internal/game"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/render"
)

const (
	prompt      = "Enter 'x y' (or 'q' to quit, 'n' for a new game): "
	clearScreen = "\033[H\033[2J"
)

// Loop reads one command per line from In and plays it on Session until
// the game ends, the player quits, In runs dry or the context is done.
type Loop struct {
	Session     *game.Session
	Store       game.RecordStore
	Renderer    render.Renderer
	In          io.Reader
	Out         io.Writer
	Log         *logrus.Logger
	ClearScreen bool

	status string
}

func (l *Loop) scan(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(l.In)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		l.Log.WithError(err).Warn("unable to read input")
	}
}

func (l *Loop) draw() error {
	if l.ClearScreen {
		if _, err := io.WriteString(l.Out, clearScreen); err != nil {
			return err
		}
	}
	s := l.Session
	if err := l.Renderer.Board(l.Out, s.Grid(), s.Width); err != nil {
		return err
	}
	if l.status != "" {
		if _, err := fmt.Fprintln(l.Out, l.status); err != nil {
			return err
		}
		l.status = ""
	}
	return nil
}

func (l *Loop) save(ctx context.Context) {
	r, ok := l.Session.Record()
	if !ok {
		return
	}
	if err := l.Store.SaveRecord(ctx, r); err != nil {
		l.Log.WithError(err).WithField("session", r.ID.String()).
			Error("unable to save game record")
	}
}

// step applies one command and reports whether the loop is done.
func (l *Loop) step(ctx context.Context, cmd Command) (done bool, err error) {
	s := l.Session
	switch cmd.Kind {
	case Quit:
		_, err = fmt.Fprintln(l.Out, "Bye!")
		return true, err

	case Restart:
		if s.Moves > 0 {
			s.Forfeit()
			l.save(ctx)
		}
		s.Restart()
		l.status = "New game."
		return false, nil
	}

	if !s.Board.InBounds(cmd.X, cmd.Y) {
		l.status = fmt.Sprintf(
			"Out of bounds. x in [0,%d], y in [0,%d].", s.Width-1, s.Height-1,
		)
		return false, nil
	}

	outcome, err := s.Open(cmd.X, cmd.Y)
	if err != nil {
		return true, err
	}

	switch {
	case outcome == mines.HitMine:
		l.status = "Game Over! You hit a mine."
	case s.Won:
		l.status = "You win! Well played."
	case outcome == mines.Ignored:
		l.status = "Already revealed."
	}

	if !s.Finished() {
		return false, nil
	}

	l.save(ctx)
	return true, l.draw()
}

func (l *Loop) Run(ctx context.Context) error {
	if l.Store == nil {
		l.Store = game.NopStore{}
	}
	if l.Log == nil {
		l.Log = mines.Log
	}

	// stops the scanner once Run returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go l.scan(ctx, lines)

	for {
		if err := l.draw(); err != nil {
			return err
		}
		if _, err := io.WriteString(l.Out, prompt); err != nil {
			return err
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			_, err := fmt.Fprintln(l.Out, "\nBye!")
			return err
		case line, ok = <-lines:
		}
		if !ok {
			_, err := fmt.Fprintln(l.Out, "\nBye!")
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			l.status = err.Error()
			continue
		}

		done, err := l.step(ctx, cmd)
		if done || err != nil {
			return err
		}
	}
}
