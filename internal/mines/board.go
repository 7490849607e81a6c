package mines

import (
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase uint8

const (
	// no mines yet; the first reveal places them
	PreGame Phase = iota
	Placed
)

func (p Phase) String() string {
	switch p {
	case PreGame:
		return "PreGame"
	case Placed:
		return "Placed"
	default:
		return "Phase(?)"
	}
}

// Outcome is the result of a single [Board.Reveal] call.
type Outcome uint8

const (
	// out of bounds or already revealed; nothing changed
	Ignored Outcome = iota
	Safe
	HitMine
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Safe:
		return "safe"
	case HitMine:
		return "mine"
	default:
		return "unknown"
	}
}

// IsSafe is false only when a mine was hit.
func (o Outcome) IsSafe() bool {
	return o != HitMine
}

// Board is a minesweeper grid. Mines are placed lazily on the first reveal
// so that the first revealed cell is never a mine.
//
// A Board is not safe for concurrent use.
type Board struct {
	width, height, mineCount int

	phase    Phase
	mines    []bool /* real mine points, y*width+x */
	revealed []bool
	opened   int

	rnd *rand.Rand
}

// New creates an empty board. If r is nil a randomly seeded source is used.
func New(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if err := Validate(width, height, mineCount); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		mines:     make([]bool, width*height),
		revealed:  make([]bool, width*height),
		rnd:       r,
	}
	return b, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) Phase() Phase   { return b.phase }

func (b *Board) RevealedCount() int { return b.opened }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) Revealed(x, y int) bool {
	return b.InBounds(x, y) && b.revealed[b.index(x, y)]
}

func (b *Board) IsMine(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	if b.phase == PreGame {
		return false, ErrMinesNotPlaced
	}
	return b.mines[b.index(x, y)], nil
}

// Mines returns the flattened indices of all mined cells in ascending order.
func (b *Board) Mines() ([]int, error) {
	if b.phase == PreGame {
		return nil, ErrMinesNotPlaced
	}
	idx := make([]int, 0, b.mineCount)
	for i, mine := range b.mines {
		if mine {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// neighbours yields the in-bounds Moore neighbourhood of (x, y), without
// the cell itself.
func (b *Board) neighbours(x, y int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if !b.InBounds(xx, yy) {
					continue
				}
				if !yield(b.index(xx, yy)) {
					return
				}
			}
		}
	}
}

func (b *Board) CountAdjacentMines(x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}
	c := 0
	for j := range b.neighbours(x, y) {
		if b.mines[j] {
			c++
		}
	}
	return c
}

// Reveal opens the cell at (x, y). The first reveal of a game places the
// mines, never on (x, y). Revealing a zero cell opens its whole zero
// region together with the numbered cells bordering it.
func (b *Board) Reveal(x, y int) Outcome {
	if !b.InBounds(x, y) {
		return Ignored
	}
	i := b.index(x, y)
	if b.revealed[i] {
		return Ignored
	}

	if b.phase == PreGame {
		b.placeMines(i)
	}

	if b.mines[i] {
		b.revealed[i] = true
		b.opened++
		return HitMine
	}

	n := b.flood(i)
	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "opened": n,
	}).Debug("flood reveal")

	return Safe
}

// flood reveals cells starting at origin and returns how many it opened.
// The revealed grid doubles as the visited set.
func (b *Board) flood(origin int) int {
	opened := 0
	todo := cellstack{origin}
	for !todo.empty() {
		i := todo.pop()
		if b.revealed[i] {
			continue
		}
		b.revealed[i] = true
		b.opened++
		opened++

		x, y := i%b.width, i/b.width
		if b.CountAdjacentMines(x, y) != 0 {
			continue
		}
		for j := range b.neighbours(x, y) {
			if !b.revealed[j] && !b.mines[j] {
				todo.push(j)
			}
		}
	}
	return opened
}

// HasWon reports whether every non-mine cell has been revealed.
func (b *Board) HasWon() bool {
	return b.opened == b.width*b.height-b.mineCount
}

// Reset returns the board to [PreGame], keeping its size and mine count.
func (b *Board) Reset() {
	clear(b.mines)
	clear(b.revealed)
	b.opened = 0
	b.phase = PreGame

	Log.WithFields(logrus.Fields{
		"width":      b.width,
		"height":     b.height,
		"mine_count": b.mineCount,
	}).Debug("board reset")
}
