// Package mutation structurally edits one random subtree of an existing
// tree, producing a new independent tree.
//
// Overview:
//
//   - Mutate deep-copies the input, draws one uniform pre-order position
//     in [0, size−1], and resynthesizes the subtree at that position as a
//     fresh tree of its declared supertype. The replacement budget at a
//     node of depth d is budget − d + 1, so the mutated tree still fits
//     the overall depth budget: position 0 replaces the whole tree,
//     deeper positions get correspondingly less room.
//   - If resynthesis at the chosen point fails for lack of budget, the
//     local edit degrades to a no-op — the original subtree stays — rather
//     than propagating failure. Mutation as a whole always returns a valid
//     tree, so one failed local edit never aborts a generation step.
//   - The input tree is never modified: prior-generation individuals kept
//     alive for elitism stay byte-for-byte identical no matter how many
//     offspring are mutated from them.
//
// Determinism: identical grammar, tree, budget and an identically seeded
// rng.Source produce identical offspring.
package mutation
