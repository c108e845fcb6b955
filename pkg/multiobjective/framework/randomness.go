package framework

import (
	"golang.org/x/exp/rand"
)

// Randomness is the seedable source used for tie-breaking and tournaments.
// It is never shared through package state so ranking passes are
// reproducible.
type Randomness interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomness returns a Randomness seeded with seed.
func NewRandomness(seed uint64) Randomness {
	return rand.New(rand.NewSource(seed))
}

// CoinFlip reports true with probability 0.5.
func CoinFlip(r Randomness) bool {
	return r.Float64() < 0.5
}
