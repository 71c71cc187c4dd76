package core

import "math/rand/v2"

// Source is the random source injected into seeding operations. A
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillBernoulli fills the buffer so each entry is independently true with
// probability p, drawing from src in index order.
func FillBernoulli(src Source, buf []bool, p float64) {
	for i := range buf {
		buf[i] = src.Float64() < p
	}
}

// Int64 returns a non-negative pseudo-random 63-bit integer, used to derive
// child seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }
