package rng

import (
	"fmt"
	"math/rand"
)

// Source is the only stream of randomness evotree consumes.
//
// All methods draw uniformly. Implementations must be deterministic for a
// fixed seed and are not safe for concurrent use: reproducing a run
// requires replaying every draw in identical order.
type Source interface {
	// IntN returns a uniform integer in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Int64 returns a uniform integer in the inclusive range [lo, hi].
	// Panics if lo > hi.
	Int64(lo, hi int64) int64

	// Float64 returns a uniform float in [0, 1).
	Float64() float64

	// Float64Range returns a uniform float in [lo, hi). Panics if lo > hi.
	Float64Range(lo, hi float64) float64
}

// source is the default Source backed by a seeded *rand.Rand.
type source struct {
	r *rand.Rand
}

// New returns a deterministic Source seeded with seed.
// Identical seeds produce identical draw sequences.
// Complexity: O(1)
func New(seed int64) Source {
	return &source{r: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand as a Source.
// The caller keeps ownership of r and must not share it across goroutines.
func FromRand(r *rand.Rand) Source {
	return &source{r: r}
}

// IntN returns a uniform integer in [0, n).
func (s *source) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: IntN bound must be positive, got %d", n))
	}

	return s.r.Intn(n)
}

// Int64 returns a uniform integer in the inclusive range [lo, hi].
func (s *source) Int64(lo, hi int64) int64 {
	if lo > hi {
		panic(fmt.Sprintf("rng: Int64 range inverted: [%d, %d]", lo, hi))
	}
	// Span as uint64 to survive hi-lo overflowing int64.
	span := uint64(hi-lo) + 1
	if span == 0 {
		// Full 64-bit span: any value is in range.
		return int64(s.r.Uint64())
	}

	return lo + int64(s.r.Uint64()%span)
}

// Float64 returns a uniform float in [0, 1).
func (s *source) Float64() float64 { return s.r.Float64() }

// Float64Range returns a uniform float in [lo, hi).
func (s *source) Float64Range(lo, hi float64) float64 {
	if lo > hi {
		panic(fmt.Sprintf("rng: Float64Range inverted: [%g, %g)", lo, hi))
	}

	return lo + (hi-lo)*s.r.Float64()
}

// Choice returns a uniformly chosen element of items, consuming exactly one
// integer draw. Panics on an empty slice (programmer error).
func Choice[T any](s Source, items []T) T {
	if len(items) == 0 {
		panic("rng: Choice on empty slice")
	}

	return items[s.IntN(len(items))]
}

// WeightedChoice returns an element of items chosen with probability
// proportional to its weight, consuming exactly one float draw.
//
// Panics if the slices differ in length, any weight is negative, or all
// weights are zero — each a programmer error that must fail loudly.
func WeightedChoice[T any](s Source, items []T, weights []float64) T {
	if len(items) == 0 || len(items) != len(weights) {
		panic(fmt.Sprintf("rng: WeightedChoice needs matching non-empty slices, got %d items / %d weights", len(items), len(weights)))
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("rng: WeightedChoice negative weight %g", w))
		}
		total += w
	}
	if total == 0 {
		panic("rng: WeightedChoice all weights are zero")
	}

	// Walk the cumulative distribution; the final element absorbs any
	// floating-point slack.
	u := s.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if u < acc {
			return items[i]
		}
	}

	return items[len(items)-1]
}
