package camera

import "math/rand/v2"

// Rand is the random source AUTO mode draws its next sub-mode from.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand seeded with seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
