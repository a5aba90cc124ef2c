// Package crossover splices a compatible subtree from a donor tree into a
// base tree, producing a new independent offspring.
//
// Overview:
//
//   - Crossover selects one uniform pre-order position in the base exactly
//     as mutation does. At that slot it searches the donor for subtrees
//     whose declared supertype matches the slot's and whose height fits
//     the remaining budget (budget − slot depth + 1). If one or more
//     qualify, a uniformly chosen one is spliced in as a structural copy;
//     otherwise the slot falls back to fresh synthesis. A synthesis
//     failure degrades to a local no-op — crossover never raises past
//     argument validation and never leaves a partially built tree.
//   - Pair applies the operator independently in both directions: p1 as
//     base then p2 as base, with separate, uncorrelated draws.
//   - Both parents are deep-copied before any edit and stay untouched.
//
// Determinism: identical grammar, parents, budget and an identically
// seeded rng.Source produce identical offspring.
package crossover
