package game

import "math/rand"

// Source supplies randomness for dice and coin flips. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a private source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
