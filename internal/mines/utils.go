package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// LIFO work list of flattened cell indices
type cellstack []int

func (s *cellstack) push(i int) {
	*s = append(*s, i)
}

func (s *cellstack) pop() int {
	last := len(*s) - 1
	i := (*s)[last]
	*s = (*s)[:last]
	return i
}

func (s cellstack) empty() bool {
	return len(s) == 0
}
