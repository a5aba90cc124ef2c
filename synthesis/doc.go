// Package synthesis builds fresh, depth-bounded, type-valid trees from an
// extracted grammar.
//
// Overview:
//
//   - Synthesize performs type-directed, depth-bounded recursive
//     generation. Expanding an abstract symbol filters its alternatives to
//     those whose distance-to-terminal fits the remaining budget; while any
//     surviving alternative is recursive, the choice is restricted to the
//     recursive ones (this keeps trees from collapsing into the shallowest
//     completion while budget remains). The pick is uniform, or weighted
//     when a candidate carries an explicit production weight.
//   - Expanding a concrete symbol registers one deferred expansion per
//     field instead of descending immediately. Pending expansions are
//     consumed in a seed-reproducible randomized order: each step draws a
//     uniform index into the queue, removes that entry (preserving the
//     order of the rest), resolves it, and appends whatever new expansions
//     it produced. The expansion order of a tree is therefore itself part
//     of the replayable random stream.
//   - Primitive fields draw uniformly from their declared domain. Sequence
//     fields draw a uniform length in [0, budget−1] (0 when no budget
//     remains) and synthesize each element with one less budget.
//     Annotated fields delegate entirely to their metahandler, which
//     receives the same recursive synthesis capability plus the
//     already-bound sibling values.
//   - After the queue drains, the tree's metadata is recomputed bottom-up
//     in one pass.
//
// Failure modes are explicit and typed: BudgetError (budget negative or
// below the target's minimal distance-to-terminal, raised before any state
// is touched) and ProductionError (every alternative excluded by the
// current budget). Both carry the offending symbol and budget, unwrap to
// their sentinels, and never leave a partially built tree reachable —
// generation either returns a complete tree or an error, and bounded
// budgets guarantee it terminates.
//
// Determinism: identical grammar, budget, symbol and an identically seeded
// rng.Source produce structurally identical trees.
package synthesis
