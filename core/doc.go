// Package core defines the central grammar and tree types of evotree:
// type references, symbols, the immutable Grammar value produced by
// Extract, and the Node/Value pair that represents synthesized trees.
//
// Overview:
//
//   - A grammar is declared as data, never derived by reflection: abstract
//     symbols stand for a choice among alternatives, concrete symbols carry
//     an ordered schema of typed fields. Extract registers every
//     declaration (and every type transitively reachable through fields),
//     validates the result, and runs the fixpoint reachability analyzer.
//   - The analyzer computes, for every symbol, the minimal distance to a
//     fully terminal expansion, flags symbols reachable from themselves as
//     recursive, and records per-abstract-symbol step distances to each
//     reachable alternative. A starting symbol that cannot reach a
//     terminal is rejected at Extract time with an explicit diagnostic —
//     generation can therefore never loop forever.
//   - Trees are plain pointer structures. Derived metadata (Size, Depth,
//     DistanceToTerm) is never patched incrementally: Relabel recomputes it
//     bottom-up in one pass, which keeps it correct under arbitrary
//     subtree replacement.
//
// Concurrency:
//
//   - A Grammar is read-only after Extract and safe to share across
//     goroutines. Nodes are not: callers edit only trees they own, and the
//     variation operators always deep-copy before editing.
//
// Errors (sentinel):
//
//	ErrInvalidGrammar    - a declaration is malformed (duplicate name,
//	                       untyped field, fields on an abstract symbol, ...).
//	ErrNotAbstract       - an alternative was registered on a non-abstract symbol.
//	ErrUnknownSymbol     - a field or declaration references an undeclared symbol.
//	ErrNoFiniteExpansion - the starting symbol cannot reach a terminal.
//	ErrBadWeight         - a production weight is zero, negative or non-finite.
package core
