// Package random provides the uniform random source used by the engine and
// by problem definitions. Each Source wraps an independent PCG generator, so
// one engine instance is fully reproducible from a single seed and separate
// goroutines can each own their own Source.
package random

import (
	"math/rand/v2"
)

// Source is a uniform random number generator over numeric ranges.
// A Source is not safe for concurrent use; give each logical thread of
// use its own instance.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded with the given value.
// A seed of 0 draws a fresh PCG state, giving a non-reproducible run.
func New(seed uint64) *Source {
	if seed == 0 {
		return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Float64 returns a uniform value in [min, max).
// It returns min when max <= min.
func (s *Source) Float64(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Int returns a uniform integer in [min, max], bounds inclusive.
// It returns min when max <= min.
func (s *Source) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// Uint returns a uniform unsigned integer in [min, max], bounds inclusive.
func (s *Source) Uint(min, max uint) uint {
	if max <= min {
		return min
	}
	return min + uint(s.rng.Uint64N(uint64(max-min+1)))
}
