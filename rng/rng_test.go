// Package rng_test verifies determinism and range contracts of the default
// Source and the generic selection helpers.
package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velmoren/evotree/rng"
)

// TestDeterminism verifies that two sources with the same seed replay the
// same draw sequence, and a different seed diverges.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	a := rng.New(42)
	b := rng.New(42)
	c := rng.New(43)

	same, diff := 0, 0
	for i := 0; i < 100; i++ {
		va, vb, vc := a.IntN(1_000_000), b.IntN(1_000_000), c.IntN(1_000_000)
		require.Equal(t, va, vb, "same seed must replay identically at draw %d", i)
		if va == vc {
			same++
		} else {
			diff++
		}
	}
	require.Greater(t, diff, same, "different seeds should diverge")
}

// TestIntNRange verifies IntN stays within [0, n).
func TestIntNRange(t *testing.T) {
	t.Parallel()

	s := rng.New(7)
	for i := 0; i < 1000; i++ {
		v := s.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) out of range: %d", v)
		}
	}
}

// TestInt64Inclusive verifies both endpoints of Int64 are reachable and no
// value escapes the range.
func TestInt64Inclusive(t *testing.T) {
	t.Parallel()

	s := rng.New(11)
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		v := s.Int64(-2, 2)
		require.GreaterOrEqual(t, v, int64(-2))
		require.LessOrEqual(t, v, int64(2))
		seen[v] = true
	}
	require.True(t, seen[-2], "lower bound should be reachable")
	require.True(t, seen[2], "upper bound should be reachable")
}

// TestFloat64Range verifies Float64Range stays within [lo, hi).
func TestFloat64Range(t *testing.T) {
	t.Parallel()

	s := rng.New(13)
	for i := 0; i < 1000; i++ {
		v := s.Float64Range(-1.5, 2.5)
		if v < -1.5 || v >= 2.5 {
			t.Fatalf("Float64Range out of range: %g", v)
		}
	}
}

// TestChoiceUniform verifies Choice only returns elements of the slice.
func TestChoiceUniform(t *testing.T) {
	t.Parallel()

	s := rng.New(17)
	items := []string{"a", "b", "c"}
	counts := map[string]int{}
	for i := 0; i < 300; i++ {
		counts[rng.Choice(s, items)]++
	}
	for _, it := range items {
		require.Greater(t, counts[it], 0, "every element should be selectable")
	}
}

// TestWeightedChoiceZeroWeight verifies a zero-weight element is never
// chosen when an alternative carries all the mass.
func TestWeightedChoiceZeroWeight(t *testing.T) {
	t.Parallel()

	s := rng.New(19)
	items := []int{1, 2}
	for i := 0; i < 200; i++ {
		require.Equal(t, 2, rng.WeightedChoice(s, items, []float64{0, 1}))
	}
}

// TestPanicsOnProgrammerError verifies invalid arguments fail loudly.
func TestPanicsOnProgrammerError(t *testing.T) {
	t.Parallel()

	s := rng.New(23)
	require.Panics(t, func() { s.IntN(0) })
	require.Panics(t, func() { s.Int64(3, 2) })
	require.Panics(t, func() { s.Float64Range(1, 0) })
	require.Panics(t, func() { rng.Choice(s, []int{}) })
	require.Panics(t, func() { rng.WeightedChoice(s, []int{1}, []float64{-1}) })
	require.Panics(t, func() { rng.WeightedChoice(s, []int{1, 2}, []float64{0, 0}) })
}
