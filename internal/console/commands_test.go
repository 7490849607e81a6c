package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line string
		cmd  Command
		err  error
	}{
		{"q", Command{Kind: Quit}, nil},
		{"  QUIT ", Command{Kind: Quit}, nil},
		{"exit", Command{Kind: Quit}, nil},
		{"n", Command{Kind: Restart}, nil},
		{"new", Command{Kind: Restart}, nil},
		{"3 4", Command{Kind: Reveal, X: 3, Y: 4}, nil},
		{"3,4", Command{Kind: Reveal, X: 3, Y: 4}, nil},
		{" 10 , 0 ", Command{Kind: Reveal, X: 10, Y: 0}, nil},
		{"-1 2", Command{Kind: Reveal, X: -1, Y: 2}, nil},
		{"", Command{}, ErrBadArity},
		{"1", Command{}, ErrBadArity},
		{"1 2 3", Command{}, ErrBadArity},
		{"a b", Command{}, ErrNotNumeric},
		{"1 b", Command{}, ErrNotNumeric},
	}
	for _, test := range testCases {
		cmd, err := ParseCommand(test.line)
		assert.Equal(t, test.err, err, "line %q", test.line)
		assert.Equal(t, test.cmd, cmd, "line %q", test.line)
	}
}
