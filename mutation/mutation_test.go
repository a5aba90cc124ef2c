// Package mutation_test exercises subtree mutation: argument validation,
// parent immutability, budget respect, supertype preservation and the
// tight-budget no-op degradation.
package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/mutation"
	"github.com/velmoren/evotree/rng"
	"github.com/velmoren/evotree/synthesis"
)

// exprGrammar builds Expr -> Plus(Expr,Expr) | One().
func exprGrammar(t *testing.T) *core.Grammar {
	t.Helper()
	g, err := core.Extract("Expr",
		core.Abstract("Expr"),
		core.Concrete("One", core.Extends("Expr")),
		core.Concrete("Plus", core.Extends("Expr"),
			core.WithField("Left", core.Ref("Expr")),
			core.WithField("Right", core.Ref("Expr")),
		),
	)
	require.NoError(t, err)

	return g
}

// parent synthesizes a reproducible tree to mutate.
func parent(t *testing.T, g *core.Grammar, seed int64, budget int) *core.Node {
	t.Helper()
	tree, err := synthesis.Individual(rng.New(seed), g, budget)
	require.NoError(t, err)

	return tree
}

func TestMutate_ArgumentValidation(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 1, 4)

	_, err := mutation.Mutate(nil, g, tree, 4)
	require.ErrorIs(t, err, mutation.ErrNilSource)

	_, err = mutation.Mutate(rng.New(1), nil, tree, 4)
	require.ErrorIs(t, err, mutation.ErrNilGrammar)

	_, err = mutation.Mutate(rng.New(1), g, nil, 4)
	require.ErrorIs(t, err, mutation.ErrNilTree)

	_, err = mutation.Mutate(rng.New(1), g, tree, -1)
	require.ErrorIs(t, err, mutation.ErrBadBudget)
}

func TestMutate_ParentUntouched(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 3, 5)
	before := tree.String()

	// A long run of mutations must never write through to the input.
	for seed := int64(0); seed < 1000; seed++ {
		_, err := mutation.Mutate(rng.New(seed), g, tree, 5)
		require.NoError(t, err)
	}
	require.Equal(t, before, tree.String())
}

func TestMutate_BudgetRespected(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	const budget = 5
	tree := parent(t, g, 11, budget)

	for seed := int64(0); seed < 300; seed++ {
		m, err := mutation.Mutate(rng.New(seed), g, tree, budget)
		require.NoError(t, err)
		require.LessOrEqual(t, m.DistanceToTerm(), budget,
			"seed %d produced %s", seed, m)
	}
}

func TestMutate_PreservesSupertype(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 5, 5)

	// Whatever position gets rewritten, every node in the result is still a
	// production of Expr and the whole tree stays assignable to the root's
	// original slot.
	for seed := int64(0); seed < 200; seed++ {
		m, err := mutation.Mutate(rng.New(seed), g, tree, 5)
		require.NoError(t, err)
		require.Equal(t, "Expr", m.Supertype())
		m.Walk(func(n *core.Node) bool {
			require.Equal(t, "Expr", n.Supertype())

			return true
		})
	}
}

func TestMutate_MetadataFresh(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 9, 5)

	m, err := mutation.Mutate(rng.New(4), g, tree, 5)
	require.NoError(t, err)

	recount := m.Clone()
	core.Relabel(recount)
	require.Equal(t, recount.Size(), m.Size())
	require.Equal(t, recount.DistanceToTerm(), m.DistanceToTerm())
	require.Equal(t, 1, m.Depth())
}

func TestMutate_ZeroBudgetDegradesToNoOp(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 2, 4)

	// Budget 0 cannot afford any replacement anywhere, so every position
	// degrades to a local no-op: the result equals the input structurally
	// while remaining an independent copy.
	for seed := int64(0); seed < 100; seed++ {
		m, err := mutation.Mutate(rng.New(seed), g, tree, 0)
		require.NoError(t, err)
		require.Equal(t, tree.String(), m.String())
		require.NotSame(t, tree, m)
	}
}

func TestMutate_SingleNodeTree(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	leaf := parent(t, g, 1, 1) // One()

	// The only position is the root; with enough budget the whole tree is
	// resynthesized as some Expr production.
	m, err := mutation.Mutate(rng.New(6), g, leaf, 3)
	require.NoError(t, err)
	require.Equal(t, "Expr", m.Supertype())
	require.LessOrEqual(t, m.DistanceToTerm(), 3)
}

func TestMutate_Deterministic(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	tree := parent(t, g, 8, 5)

	for seed := int64(0); seed < 20; seed++ {
		a, err := mutation.Mutate(rng.New(seed), g, tree, 5)
		require.NoError(t, err)
		b, err := mutation.Mutate(rng.New(seed), g, tree, 5)
		require.NoError(t, err)
		require.Equal(t, a.String(), b.String(), "seed %d diverged", seed)
	}
}
