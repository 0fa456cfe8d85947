package rng

import (
	"math/rand/v2"
)

// Error messages are user facing and surfaced verbatim, do not change them.
const (
	msgNotPositive = "Both x and y must be positive numbers."
	msgInverted    = "Invalid range: x must be less than or equal to y."
)

type InvalidRangeError struct {
	msg string
}

func (e *InvalidRangeError) Error() string {
	return e.msg
}

// Sampler draws uniformly distributed integers from caller supplied
// inclusive ranges. It holds no state of its own, each call seeds a fresh
// generator from the source, so concurrent calls share nothing.
type Sampler struct {
	source Source
}

func New(source Source) *Sampler {
	return &Sampler{
		source: source,
	}
}

// Sample returns one integer drawn uniformly from [low, high].
func (s *Sampler) Sample(low int64, high int64) (int64, error) {
	if low <= 0 || high <= 0 {
		return 0, &InvalidRangeError{msg: msgNotPositive}
	}
	if low > high {
		return 0, &InvalidRangeError{msg: msgInverted}
	}

	s1, s2 := s.source.Seed()
	r := rand.New(rand.NewPCG(s1, s2))

	// Draw unsigned so the MinInt64 draw needs no special case, the
	// width is at least 1 once validation has passed.
	width := uint64(high-low) + 1
	return low + int64(r.Uint64()%width), nil
}
