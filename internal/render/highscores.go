package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vancomm/mines/internal/game"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var rowStyle = lipgloss.NewStyle().Padding(0, 1)

func formatPlaytime(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64) + "s"
}

func (r Renderer) Highscores(w io.Writer, records []game.Record) error {
	if len(records) == 0 {
		_, err := io.WriteString(w, "No games won yet.\n")
		return err
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			rec.Params.String(),
			formatPlaytime(rec.Playtime),
			strconv.Itoa(rec.Moves),
			rec.EndedAt.Local().Format(time.DateTime),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "BOARD", "TIME", "MOVES", "DATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
