package mutation

import (
	"errors"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/rng"
	"github.com/velmoren/evotree/synthesis"
)

// Sentinel errors for argument validation. Mutation itself never fails:
// once the inputs are valid, a tree always comes back.
var (
	// ErrNilSource indicates a nil rng.Source was passed.
	ErrNilSource = errors.New("mutation: random source is nil")

	// ErrNilGrammar indicates a nil *core.Grammar was passed.
	ErrNilGrammar = errors.New("mutation: grammar is nil")

	// ErrNilTree indicates a nil input tree.
	ErrNilTree = errors.New("mutation: tree is nil")

	// ErrBadBudget indicates a negative depth budget.
	ErrBadBudget = errors.New("mutation: depth budget must be non-negative")
)

// Mutate returns a new independent tree derived from tree by replacing the
// subtree at one uniformly drawn pre-order position with freshly
// synthesized content of that subtree's declared supertype.
//
// Position 0 replaces the whole tree (budget = budget − depth + 1 = the
// full budget at the root); any other position walks children in order,
// subtracting each visited subtree's size from the running counter until
// the target is found, then applies the same rule locally. A local budget
// failure leaves that subtree unchanged instead of failing the call.
//
// The input tree is deep-copied first and never modified.
// Complexity: O(n) for the copy and relabel plus the cost of one synthesis.
func Mutate(src rng.Source, g *core.Grammar, tree *core.Node, budget int) (*core.Node, error) {
	// Validate inputs; these are the only failure modes.
	if src == nil {
		return nil, ErrNilSource
	}
	if g == nil {
		return nil, ErrNilGrammar
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	if budget < 0 {
		return nil, ErrBadBudget
	}

	// Work on a private deep copy; relabel so positions and depths are
	// trustworthy even if the caller handed over stale metadata.
	work := tree.Clone()
	core.Relabel(work)

	// One uniform draw selects the pre-order position to edit.
	pos := src.IntN(work.Size())
	result := mutateAt(src, g, work, pos, budget)

	// Recompute metadata bottom-up after the splice.
	core.Relabel(result)

	return result, nil
}

// mutateAt replaces the node at pre-order position pos within n (0 = n
// itself) and returns the subtree to splice in place of n.
func mutateAt(src rng.Source, g *core.Grammar, n *core.Node, pos, budget int) *core.Node {
	if pos == 0 {
		// Resynthesize at this point, honoring the remaining budget.
		replacement, err := synthesis.Synthesize(src, g, budget-n.Depth()+1, n.Supertype())
		if err != nil {
			return n // budget too tight here: degrade to a no-op
		}

		return replacement
	}

	// Walk children in order, subtracting subtree sizes until the target
	// subtree is found.
	pos--
	for _, slot := range n.ChildSlots() {
		child := n.ChildAt(slot)
		if pos < child.Size() {
			replacement := mutateAt(src, g, child, pos, budget)
			if replacement != child {
				n.SetChildAt(slot, replacement)
			}

			return n
		}
		pos -= child.Size()
	}

	return n // position exhausted on non-node values: nothing to edit
}
