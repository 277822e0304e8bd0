package graph

import "math/rand"

// RandSource yields uniform values in [0, 1).
type RandSource interface {
	Float64() float64
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// ConstRand always yields the same value. Useful for fixtures.
type ConstRand float64

func (c ConstRand) Float64() float64 { return float64(c) }

func symmetric(rng RandSource) float64 {
	return (rng.Float64() - 0.5) * 2
}
