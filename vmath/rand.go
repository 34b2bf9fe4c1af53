package vmath

import (
	"math"
)

// Park-Miller minimal standard LCG parameters
const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
	lcgMaxState   = lcgModulus - 1
)

// Rand is a deterministic Park-Miller LCG. Identical seed + call sequence
// yields an identical output stream, which replay and rarity rolls rely on.
// Internal state stays in [1, 2147483646]; never zero or negative.
type Rand struct {
	seed int64
}

// NewRand normalizes any int64 seed into the valid state range. Reduction is
// modulo lcgMaxState so the remainder never lands below 1 after the shift;
// reducing by the modulus itself would map exact multiples of the max state
// onto 0, a fixed point the generator can never leave.
func NewRand(seed int64) *Rand {
	seed = seed % lcgMaxState
	if seed <= 0 {
		seed += lcgMaxState
	}
	return &Rand{seed: seed}
}

// Seed returns the current internal state, usable to resume a stream
func (r *Rand) Seed() int64 {
	return r.seed
}

// Next advances the generator and returns a float in [0, 1)
func (r *Rand) Next() float64 {
	r.seed = r.seed * lcgMultiplier % lcgModulus
	return float64(r.seed-1) / float64(lcgMaxState)
}

// Range returns a float in [min, max)
func (r *Rand) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// RangeInt returns an integer in [min, max], bounds inclusive
func (r *Rand) RangeInt(min, max int) int {
	return int(math.Floor(r.Range(float64(min), float64(max+1))))
}

// Pick returns a uniformly chosen element. Empty slices are the caller's
// responsibility to guard
func Pick[T any](r *Rand, seq []T) T {
	return seq[int(r.Next()*float64(len(seq)))]
}

// Shuffle permutes seq in place with a Fisher-Yates pass
func Shuffle[T any](r *Rand, seq []T) {
	for i := len(seq) - 1; i > 0; i-- {
		j := int(r.Next() * float64(i+1))
		seq[i], seq[j] = seq[j], seq[i]
	}
}
