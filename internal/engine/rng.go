package engine

import "time"

// Source supplies uniform random numbers in [0, 1).
// Tests substitute fixed sequences; production wires in an RNG.
type Source interface {
	Float64() float64
}

// RNG is a small deterministic pseudo-random generator (64-bit LCG).
// The same seed always yields the same sequence on every platform.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from seed. A zero seed is remapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Seed restarts the sequence from seed.
func (r *RNG) Seed(seed int64) {
	*r = *NewRNG(seed)
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed int64) *RNG {
	return NewRNG(seed)
}

// NewSource returns a Source seeded from the wall clock.
func NewSource() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Next generates the next raw 64-bit value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1) built from the high 53 bits,
// so it can never round up to 1.0.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 11) % uint64(n)) //#nosec G115 -- n is always positive
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
