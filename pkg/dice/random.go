// Package dice provides seeded randomness for games: a resettable random
// source and n-sided dice drawing from it.
package dice

import "math/rand/v2"

// Random is a seeded random source. Reset rewinds it to the start of its
// sequence, which makes a game replayable. Random is not safe for concurrent use.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom creates a source for seed.
func NewRandom(seed uint64) *Random {
	r := &Random{seed: seed}
	r.Reset()
	return r
}

// Seed returns the seed the source was created with.
func (r *Random) Seed() uint64 { return r.seed }

// Reset restarts the sequence from the seed.
func (r *Random) Reset() {
	r.rng = rand.New(rand.NewPCG(r.seed, r.seed^0x9e3779b97f4a7c15))
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Random) IntN(n int) int { return r.rng.IntN(n) }

// Int returns a non-negative pseudo-random int.
func (r *Random) Int() int { return r.rng.Int() }
