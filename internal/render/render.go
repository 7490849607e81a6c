package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/mines/internal/mines"
)

var (
	hiddenStyle = lipgloss.NewStyle().Faint(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	rulerStyle  = lipgloss.NewStyle().Faint(true)

	// 1 to 8
	countStyles = [...]lipgloss.Style{
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

type Renderer struct {
	Color bool
}

func (r Renderer) cell(s mines.CellState) string {
	ch := s.String()
	if !r.Color {
		return ch
	}
	switch {
	case s == mines.Hidden:
		return hiddenStyle.Render(ch)
	case s.IsMine():
		return mineStyle.Render(ch)
	case 1 <= s && s <= 8:
		return countStyles[s].Render(ch)
	default:
		return ch
	}
}

func (r Renderer) ruler(s string) string {
	if !r.Color {
		return s
	}
	return rulerStyle.Render(s)
}

// Board writes g with column numbers on top and row numbers on the left:
//
//	   0  1  2
//	  --------
//	0|  .  1  *
func (r Renderer) Board(w io.Writer, g mines.Grid, width int) error {
	var b strings.Builder

	header := make([]string, width)
	for x := range width {
		header[x] = fmt.Sprintf("%2d", x)
	}
	b.WriteString(r.ruler("   "+strings.Join(header, " ")) + "\n")
	b.WriteString(r.ruler("   "+strings.Repeat("-", max(3*width-1, 0))) + "\n")

	for y := range len(g) / width {
		b.WriteString(r.ruler(fmt.Sprintf("%2d|", y)))
		for x := range width {
			b.WriteString("  " + r.cell(g.At(x, y, width)))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
