package crossover

import (
	"errors"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/rng"
	"github.com/velmoren/evotree/synthesis"
)

// Sentinel errors for argument validation. Past validation, crossover
// always returns a complete, budget-respecting tree.
var (
	// ErrNilSource indicates a nil rng.Source was passed.
	ErrNilSource = errors.New("crossover: random source is nil")

	// ErrNilGrammar indicates a nil *core.Grammar was passed.
	ErrNilGrammar = errors.New("crossover: grammar is nil")

	// ErrNilTree indicates a nil parent tree.
	ErrNilTree = errors.New("crossover: parent tree is nil")

	// ErrBadBudget indicates a negative depth budget.
	ErrBadBudget = errors.New("crossover: depth budget must be non-negative")
)

// Crossover returns a new tree built from base by replacing the subtree at
// one uniformly drawn pre-order position with a compatible subtree cloned
// out of donor.
//
// A donor subtree qualifies when its declared supertype equals the slot's
// declared supertype and its height fits the remaining budget at the
// splice point. When no donor subtree qualifies, the slot is resynthesized
// from the grammar instead; if even that fails for lack of budget, the
// slot keeps its original content. Both parents are deep-copied and never
// modified.
//
// Complexity: O(n + m) for copying/scanning base and donor plus at most
// one synthesis.
func Crossover(src rng.Source, g *core.Grammar, base, donor *core.Node, budget int) (*core.Node, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if g == nil {
		return nil, ErrNilGrammar
	}
	if base == nil || donor == nil {
		return nil, ErrNilTree
	}
	if budget < 0 {
		return nil, ErrBadBudget
	}

	// Private copies: edits must never reach either parent.
	work := base.Clone()
	core.Relabel(work)
	donorCopy := donor.Clone()
	core.Relabel(donorCopy)

	pos := src.IntN(work.Size())
	result := crossAt(src, g, work, donorCopy, pos, budget)

	core.Relabel(result)

	return result, nil
}

// Pair applies Crossover independently in both directions: the first
// result uses p1 as base, the second p2. The two draws are separate and
// uncorrelated, matching how a generational loop produces two offspring
// per parent pair.
func Pair(src rng.Source, g *core.Grammar, p1, p2 *core.Node, budget int) (*core.Node, *core.Node, error) {
	c1, err := Crossover(src, g, p1, p2, budget)
	if err != nil {
		return nil, nil, err
	}
	c2, err := Crossover(src, g, p2, p1, budget)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// crossAt replaces the node at pre-order position pos within n (0 = n
// itself) and returns the subtree to splice in place of n.
func crossAt(src rng.Source, g *core.Grammar, n, donor *core.Node, pos, budget int) *core.Node {
	if pos == 0 {
		return spliceFor(src, g, n, donor, budget)
	}

	pos--
	for _, slot := range n.ChildSlots() {
		child := n.ChildAt(slot)
		if pos < child.Size() {
			replacement := crossAt(src, g, child, donor, pos, budget)
			if replacement != child {
				n.SetChildAt(slot, replacement)
			}

			return n
		}
		pos -= child.Size()
	}

	return n
}

// spliceFor picks the replacement for target: a budget-fitting donor
// subtree of the matching supertype when one exists, fresh synthesis
// otherwise, and the original subtree when even synthesis cannot fit.
func spliceFor(src rng.Source, g *core.Grammar, target, donor *core.Node, budget int) *core.Node {
	supertype := target.Supertype()
	slotBudget := budget - target.Depth() + 1

	options := findInTree(donor, supertype, slotBudget)
	if len(options) > 0 {
		return rng.Choice(src, options).Clone()
	}

	replacement, err := synthesis.Synthesize(src, g, slotBudget, supertype)
	if err != nil {
		return target // no donor match and no budget to synthesize: no-op
	}

	return replacement
}

// findInTree collects, in pre-order, every subtree of root whose declared
// supertype is supertype and whose height fits maxDepth.
func findInTree(root *core.Node, supertype string, maxDepth int) []*core.Node {
	var options []*core.Node
	root.Walk(func(n *core.Node) bool {
		if n.Supertype() == supertype && n.DistanceToTerm() <= maxDepth {
			options = append(options, n)
		}

		return true
	})

	return options
}
