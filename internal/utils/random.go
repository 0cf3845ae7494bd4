package utils

import (
	"math/rand"
	"time"
)

// RandomSource abstracts the randomness used by gacha and buff generation so
// rolls are deterministic under a fixed seed in tests.
type RandomSource interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRandomSource returns a seeded math/rand source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// NewTimeSeededSource returns a source seeded from the wall clock.
func NewTimeSeededSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

// UniformInt returns a random integer between min and max (inclusive).
func UniformInt(src RandomSource, min, max int) int {
	if min >= max {
		return min
	}
	return src.Intn(max-min+1) + min
}
