package battleship

import "math/rand/v2"

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a reproducible source for a given seed.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSystemRandomSource is seeded from the runtime source, so every game differs.
func NewSystemRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
