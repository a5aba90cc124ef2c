package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velmoren/evotree/core"
)

// blockGrammar declares a grammar with a sequence field so list-valued
// children get exercised: Block(Body: [Expr]) over Expr -> One | Plus.
func blockGrammar(t *testing.T) *core.Grammar {
	t.Helper()
	g, err := core.Extract("Block",
		core.Abstract("Expr"),
		core.Concrete("One", core.Extends("Expr")),
		core.Concrete("Plus", core.Extends("Expr"),
			core.WithField("Left", core.Ref("Expr")),
			core.WithField("Right", core.Ref("Expr")),
		),
		core.Concrete("Block", core.WithField("Body", core.ListOf(core.Ref("Expr")))),
	)
	require.NoError(t, err)

	return g
}

// plusTree assembles Plus(One(), Plus(One(), One())) by hand and relabels it.
func plusTree(t *testing.T, g *core.Grammar) *core.Node {
	t.Helper()
	one := func() *core.Node { return core.NewNode(g.Symbol("One")) }
	inner := core.NewNode(g.Symbol("Plus"), one(), one())
	root := core.NewNode(g.Symbol("Plus"), one(), inner)
	core.Relabel(root)

	return root
}

func TestRelabel_Metadata(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	root := plusTree(t, g)

	// Plus(One(), Plus(One(), One())): 5 nodes, height 3, root depth 1.
	require.Equal(t, 5, root.Size())
	require.Equal(t, 1, root.Depth())
	require.Equal(t, 3, root.DistanceToTerm())

	left := root.Children()[0]
	inner := root.Children()[1]
	require.Equal(t, 1, left.Size())
	require.Equal(t, 2, left.Depth())
	require.Equal(t, 1, left.DistanceToTerm())
	require.Equal(t, 3, inner.Size())
	require.Equal(t, 2, inner.Depth())
	require.Equal(t, 2, inner.DistanceToTerm())
	require.Equal(t, 3, inner.Children()[0].Depth())
}

func TestRelabel_Idempotent(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	root := plusTree(t, g)

	before := root.String()
	size, depth, height := root.Size(), root.Depth(), root.DistanceToTerm()
	core.Relabel(root)
	require.Equal(t, before, root.String())
	require.Equal(t, size, root.Size())
	require.Equal(t, depth, root.Depth())
	require.Equal(t, height, root.DistanceToTerm())
}

func TestRelabel_NilRoot(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { core.Relabel(nil) })
}

func TestRelabel_ListElementsAreChildren(t *testing.T) {
	t.Parallel()

	g := blockGrammar(t)
	one := func() *core.Node { return core.NewNode(g.Symbol("One")) }
	block := core.NewNode(g.Symbol("Block"), core.ListVal{one(), one(), one()})
	core.Relabel(block)

	// Sequence elements count as direct children: depth 2, not deeper.
	require.Equal(t, 4, block.Size())
	require.Equal(t, 2, block.DistanceToTerm())
	require.Len(t, block.Children(), 3)
	for _, c := range block.Children() {
		require.Equal(t, 2, c.Depth())
	}
}

func TestNode_Supertype(t *testing.T) {
	t.Parallel()

	g := blockGrammar(t)

	// Productions report their abstract parent; parentless symbols report
	// their own name.
	require.Equal(t, "Expr", core.NewNode(g.Symbol("Plus")).Supertype())
	require.Equal(t, "Expr", core.NewNode(g.Symbol("One")).Supertype())
	require.Equal(t, "Block", core.NewNode(g.Symbol("Block")).Supertype())
}

func TestNode_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	root := plusTree(t, g)
	before := root.String()

	c := root.Clone()
	require.Equal(t, before, c.String())
	require.Equal(t, root.Size(), c.Size())

	// Editing the clone deep inside must not reach the original.
	inner := c.Children()[1]
	inner.SetField(0, core.NewNode(g.Symbol("Plus"),
		core.NewNode(g.Symbol("One")), core.NewNode(g.Symbol("One"))))
	core.Relabel(c)
	require.Equal(t, before, root.String())
	require.NotEqual(t, root.String(), c.String())
	require.Equal(t, 5, root.Size())
	require.Equal(t, 7, c.Size())
}

func TestNode_WalkPreOrder(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	root := plusTree(t, g)

	var visited []string
	root.Walk(func(n *core.Node) bool {
		visited = append(visited, n.Symbol().Name())

		return true
	})
	require.Equal(t, []string{"Plus", "One", "Plus", "One", "One"}, visited)

	// Early stop: false from the callback halts the traversal.
	count := 0
	root.Walk(func(*core.Node) bool {
		count++

		return count < 2
	})
	require.Equal(t, 2, count)
}

func TestNode_ChildSlotsInsideLists(t *testing.T) {
	t.Parallel()

	g := blockGrammar(t)
	one := func() *core.Node { return core.NewNode(g.Symbol("One")) }
	plus := core.NewNode(g.Symbol("Plus"), one(), one())
	block := core.NewNode(g.Symbol("Block"), core.ListVal{one(), plus})
	core.Relabel(block)

	slots := block.ChildSlots()
	require.Len(t, slots, 2)
	require.Same(t, plus, block.ChildAt(slots[1]))

	// Replacing a list element through its slot must land in the sequence.
	block.SetChildAt(slots[1], one())
	core.Relabel(block)
	require.Equal(t, `Block([One(), One()])`, block.String())
	require.Equal(t, 3, block.Size())
}

func TestNode_FieldByName(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	root := plusTree(t, g)

	v, ok := root.FieldByName("Left")
	require.True(t, ok)
	require.Equal(t, "One()", v.(*core.Node).String())

	_, ok = root.FieldByName("Middle")
	require.False(t, ok)
}

func TestContext_Sibling(t *testing.T) {
	t.Parallel()

	g := exprGrammar(t)
	n := core.NewNode(g.Symbol("Plus"))
	n.SetField(0, core.NewNode(g.Symbol("One")))
	ctx := core.NewContext(n, "Right")

	require.Equal(t, "Right", ctx.FieldName())
	require.Same(t, n, ctx.Owner())

	v, ok := ctx.Sibling("Left")
	require.True(t, ok)
	require.Equal(t, "One()", v.(*core.Node).String())

	// Right is the field under construction and still unbound.
	_, ok = ctx.Sibling("Right")
	require.False(t, ok)
	_, ok = ctx.Sibling("Nope")
	require.False(t, ok)
}

func TestNode_StringRendering(t *testing.T) {
	t.Parallel()

	g := blockGrammar(t)
	n := core.NewNode(g.Symbol("Plus"))
	n.SetField(1, core.NewNode(g.Symbol("One")))

	// Unbound fields render as placeholders.
	require.Equal(t, "Plus(_, One())", n.String())

	block := core.NewNode(g.Symbol("Block"), core.ListVal{
		core.IntVal(7), core.FloatVal(0.5), core.BoolVal(true), core.StrVal("x"),
	})
	require.Equal(t, `Block([7, 0.5, true, "x"])`, block.String())
}
