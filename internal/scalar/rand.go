package scalar

import "math"

// Linear congruential step used by NextValue.
const (
	lcgMultiplier uint64 = 2074984187
	lcgIncrement  uint64 = 2881137594
)

// NextValue advances seed by one deterministic step and returns a value in
// [0, 1] together with the new seed.
//
// The same seed always yields the same value and the same next seed; there is
// no hidden state. Callers thread the returned seed into the next call.
func NextValue[T Float](seed uint64) (T, uint64) {
	next := lcgMultiplier*seed + lcgIncrement
	return T(next>>32) / T(math.MaxUint32), next
}

// Source produces a deterministic stream of values from a caller-owned seed.
type Source[T Float] interface {
	Next(seed *uint64) T
}

// LCG is the default Source. It is a zero-size value; all state lives in the
// seed the caller passes in.
type LCG[T Float] struct{}

// Next replaces *seed with its successor and returns the generated value.
func (LCG[T]) Next(seed *uint64) T {
	v, next := NextValue[T](*seed)
	*seed = next
	return v
}

// Rand owns a seed and draws successive values from it.
type Rand[T Float] struct {
	seed uint64
}

// NewRand creates a generator starting at seed.
func NewRand[T Float](seed uint64) *Rand[T] {
	return &Rand[T]{seed: seed}
}

// Next returns the next value in [0, 1].
func (r *Rand[T]) Next() T {
	return LCG[T]{}.Next(&r.seed)
}

// Seed returns the current seed.
func (r *Rand[T]) Seed() uint64 {
	return r.seed
}
