package mines

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrMinesNotPlaced       = errors.New("mines are not placed yet")
	ErrOutOfBounds          = errors.New("cell out of bounds")
)

type ConfigError struct {
	Width, Height, MineCount int
	message                  string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf(
		"%s (width = %d, height = %d, mine count = %d)",
		e.message, e.Width, e.Height, e.MineCount,
	)
}

func (e ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Validate reports whether a board of the given size can hold mineCount
// mines and still leave the first revealed cell free.
func Validate(width, height, mineCount int) error {
	fail := func(msg string) error {
		return ConfigError{width, height, mineCount, msg}
	}
	switch {
	case width <= 0:
		return fail("width must be positive")
	case height <= 0:
		return fail("height must be positive")
	case height > math.MaxInt/width:
		return fail("board is too large")
	case mineCount < 0:
		return fail("mine count must not be negative")
	case mineCount >= width*height:
		return fail("mines must be fewer than total cells")
	}
	return nil
}
