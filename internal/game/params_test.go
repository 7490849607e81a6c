package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/mines/internal/mines"
)

func TestParseParams(t *testing.T) {
	p, err := ParseParams("16x16(40)")
	require.NoError(t, err)
	assert.Equal(t, Params{16, 16, 40}, *p)
	assert.Equal(t, "16x16(40)", p.String())

	for _, s := range []string{"", "9x9", "axb(c)", "3x3(9)", "0x3(0)"} {
		_, err := ParseParams(s)
		assert.ErrorIs(t, err, mines.ErrInvalidConfiguration, s)
	}
}

func TestHighscoreFilterMatch(t *testing.T) {
	won := Record{
		ID:       uuid.New(),
		Params:   Params{9, 9, 10},
		Won:      true,
		Playtime: time.Minute,
	}
	lost := won
	lost.Won = false

	assert.True(t, HighscoreFilter{}.Match(won))
	assert.False(t, HighscoreFilter{}.Match(lost))
	assert.True(t, HighscoreFilter{Params: &Params{9, 9, 10}}.Match(won))
	assert.False(t, HighscoreFilter{Params: &Params{16, 16, 40}}.Match(won))
}
