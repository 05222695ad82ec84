package random

import "math/rand/v2"

// Source is the subset of *rand.Rand the generator draws from.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed draws the seed from runtime entropy.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Uniform returns a value uniformly drawn from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return src.Float64()*(hi-lo) + lo
}
