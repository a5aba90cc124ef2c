// Package rng provides the seeded random source that every stochastic
// operation in evotree draws from.
//
// Overview:
//
//   - Source is a small interface exposing uniform integers, uniform
//     floats, and (via the generic helpers Choice and WeightedChoice)
//     uniform and weighted selection over slices.
//   - New(seed) returns the deterministic default implementation backed by
//     math/rand: identical seeds yield identical draw sequences, so any
//     synthesis, mutation or crossover run can be replayed exactly.
//
// Determinism contract:
//
//   - Every draw must be consumed strictly sequentially by a single logical
//     caller. Interleaving draws from one shared Source across goroutines
//     is unsupported and breaks reproducibility; give each worker its own
//     independently seeded Source instead.
//   - A Source never performs I/O and never blocks.
//
// Error policy:
//
//   - Invalid arguments (empty choice slice, negative weight, inverted
//     range) are programmer errors and panic immediately rather than being
//     silently coerced.
package rng
