package game

import (
	"fmt"
	"strings"

	"github.com/vancomm/mines/internal/mines"
)

type Params struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p Params) Validate() error {
	return mines.Validate(p.Unpack())
}

// [Params] implements [fmt.Stringer]
func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func ParseParams(s string) (*Params, error) {
	p := &Params{}
	ss := strings.NewReplacer("x", " ", "(", " ", ")", "").Replace(s)
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(`invalid game params "%s": %w`, s, mines.ErrInvalidConfiguration)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
