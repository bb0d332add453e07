package recommend

import (
	"math/rand"
	"time"
)

// RNG is the source of randomness for score jitter and weighted sampling.
// Callers needing reproducibility (tests, replays) inject a deterministic
// implementation.
type RNG interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// NewRNG returns a time-seeded source for production use
func NewRNG() RNG {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// FixedRNG always returns the same value. FixedRNG(0.5) yields exactly zero
// jitter, which makes ScoreMeal fully deterministic.
type FixedRNG float64

// Float64 implements RNG
func (f FixedRNG) Float64() float64 { return float64(f) }
