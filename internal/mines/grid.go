package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = -2
	/*
	 * 0 to 8 mean the cell is open and has a surrounding mine count.
	 */
	ExplodedMine   CellState = 65 /* revealed by the player */
	UnrevealedMine CellState = 67 /* shown only when revealing the whole board */
)

func (s CellState) IsMine() bool {
	return s == ExplodedMine || s == UnrevealedMine
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "."
	case s.IsMine():
		return "*"
	case s == 0:
		return " "
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a read-only picture of a board, one [CellState] per cell in row
// major order.
type Grid []CellState

func (g Grid) At(x, y, width int) CellState {
	return g[y*width+x]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot describes what the player can see. With revealAll every cell is
// shown, which is how a finished game is displayed; the board itself is
// left untouched.
func (b *Board) Snapshot(revealAll bool) Grid {
	g := make(Grid, len(b.revealed))
	for i := range g {
		x, y := i%b.width, i/b.width
		switch {
		case b.revealed[i] && b.mines[i]:
			g[i] = ExplodedMine
		case b.revealed[i]:
			g[i] = CellState(b.CountAdjacentMines(x, y))
		case revealAll && b.phase == Placed && b.mines[i]:
			g[i] = UnrevealedMine
		case revealAll && b.phase == Placed:
			g[i] = CellState(b.CountAdjacentMines(x, y))
		default:
			g[i] = Hidden
		}
	}
	return g
}
