package console

import (
	"errors"
	"strconv"
	"strings"
)

type CommandKind uint8

const (
	Reveal CommandKind = iota + 1
	Restart
	Quit
)

type Command struct {
	Kind CommandKind
	X, Y int
}

var (
	ErrBadArity   = errors.New("Invalid input. Use: x y")
	ErrNotNumeric = errors.New("Invalid input. Please enter numbers only.")
)

func ParseCommand(line string) (Command, error) {
	raw := strings.ToLower(strings.TrimSpace(line))
	switch raw {
	case "q", "quit", "exit":
		return Command{Kind: Quit}, nil
	case "n", "new":
		return Command{Kind: Restart}, nil
	}

	parts := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	if len(parts) != 2 {
		return Command{}, ErrBadArity
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Command{}, ErrNotNumeric
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, ErrNotNumeric
	}
	return Command{Kind: Reveal, X: x, Y: y}, nil
}
