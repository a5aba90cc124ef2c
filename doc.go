// Package evotree is an in-memory toolkit for generating, mutating and
// recombining type-safe syntax trees over a user-declared type hierarchy —
// the tree-based genome representation used by grammar-guided search
// algorithms such as Genetic Programming.
//
// 🚀 What is evotree?
//
//	A deterministic, zero-I/O library that brings together:
//		• Grammar extraction: declare abstract symbols and concrete variants,
//		  get a validated production system back
//		• Reachability analysis: fixpoint distance-to-terminal and
//		  recursive-symbol detection, so generation always terminates
//		• Tree synthesis: depth-bounded random trees that respect every
//		  declared type constraint
//		• Variation: positional mutation and subtree crossover that never
//		  produce an invalid or over-deep tree
//		• Metahandlers: pluggable leaf-value generators (numeric ranges,
//		  sized lists, categorical choices, bounded strings)
//
// ✨ Why choose evotree?
//
//   - Deterministic – every random draw flows through one seeded source;
//     same seed, same tree
//   - Rock-solid guarantees – sentinel errors, no panics at runtime,
//     trees stay structurally valid after arbitrary edits
//   - Pure Go – no cgo, no network, no disk
//   - Extensible – implement core.Generator to plug in custom leaf domains
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/         — grammar model: symbols, type references, the fixpoint
//	                analyzer, tree nodes and bottom-up metadata
//	rng/          — seeded random source (uniform int/float, choice,
//	                weighted choice)
//	synthesis/    — depth-bounded random tree synthesizer
//	mutation/     — positional subtree mutation
//	crossover/    — subtree crossover with synthesis fallback
//	metahandlers/ — ready-made leaf-value generators
//
// Quick ASCII example, the grammar Expr → Plus(Expr, Expr) | One():
//
//	      Plus
//	     /    \
//	   One    Plus
//	         /    \
//	       One    One
//
// represents one of the trees a depth budget of 3 admits.
//
// The generational search loop, fitness evaluation and alternate genome
// encodings are deliberately out of scope: evotree produces and edits the
// trees, the caller decides which ones survive.
//
//	go get github.com/velmoren/evotree
package evotree
