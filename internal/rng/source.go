package rng

import (
	"math/rand/v2"
)

// Source hands out fresh 64-bit seed material for a single draw.
// Implementations must be safe for concurrent use.
type Source interface {
	Seed() (uint64, uint64)
}

// EntropySource draws seed material from the process-wide math/rand/v2
// generator, which is randomly seeded at startup and safe for concurrent
// use without caller-side locking.
type EntropySource struct{}

func NewEntropySource() *EntropySource {
	return &EntropySource{}
}

func (s *EntropySource) Seed() (uint64, uint64) {
	return rand.Uint64(), rand.Uint64()
}
