package synthesis

import (
	"fmt"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/rng"
)

// Synthesize builds a fresh random tree of the named symbol, guaranteed to
// be type-valid and to fit the depth budget.
//
// Validation (in order, before any random draw):
//  1. src must be non-nil (ErrNilSource).
//  2. g must be non-nil (ErrNilGrammar).
//  3. symbol must be registered (ErrUnknownSymbol).
//  4. budget must be ≥ 0 and ≥ the symbol's distance-to-terminal
//     (BudgetError, unwrapping to ErrBudgetExceeded).
//
// On success the returned tree carries freshly computed metadata and
// depth ≤ budget. On failure no partially built tree is reachable.
//
// Complexity: O(n) draws and node constructions for an n-node result; the
// pending-expansion queue removal is O(queue) per step.
func Synthesize(src rng.Source, g *core.Grammar, budget int, symbol string) (*core.Node, error) {
	// 1-2) Nil guards.
	if src == nil {
		return nil, ErrNilSource
	}
	if g == nil {
		return nil, ErrNilGrammar
	}

	// 3) The target symbol must exist.
	if g.Symbol(symbol) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	// 4) The budget must afford the symbol's minimal completion.
	if dist := g.SymbolDistance(symbol); budget < 0 || budget < dist {
		return nil, &BudgetError{Symbol: symbol, Budget: budget, Required: dist}
	}

	// 5) Expand the root, then drain the deferred-expansion queue in
	//    randomized order.
	r := &runner{src: src, g: g}
	root, queue, err := r.expandSymbol(symbol, budget)
	if err != nil {
		return nil, err
	}
	if err = r.drain(queue); err != nil {
		return nil, err
	}

	// 6) One bottom-up metadata pass over the assembled tree.
	core.Relabel(root)

	return root, nil
}

// Individual builds a fresh random tree of the grammar's starting symbol —
// the entry the search loop calls once per initial individual. Failures are
// wrapped with the starting symbol, so a budget below the grammar's minimum
// depth reads as a diagnostic about the grammar rather than about one
// internal expansion.
func Individual(src rng.Source, g *core.Grammar, budget int) (*core.Node, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}

	tree, err := Synthesize(src, g, budget, g.Start())
	if err != nil {
		return nil, fmt.Errorf("Individual: starting symbol %q: %w", g.Start(), err)
	}

	return tree, nil
}

// runner holds the immutable inputs of one synthesis execution.
type runner struct {
	src rng.Source
	g   *core.Grammar
}

// pending is one deferred field expansion: where the value goes (owner and
// field index) decoupled from when it is produced (queue order) and how
// deep it may grow (budget).
type pending struct {
	owner  *core.Node
	field  int
	budget int
}

// drain resolves queued expansions until none remain. Each step draws a
// uniform index into the queue, removes that entry preserving the order of
// the rest, resolves it, binds the value, and appends any new expansions —
// the documented, seed-reproducible expansion order.
func (r *runner) drain(queue []pending) error {
	for len(queue) > 0 {
		i := r.src.IntN(len(queue))
		p := queue[i]
		queue = append(queue[:i], queue[i+1:]...)

		f := p.owner.Symbol().Fields()[p.field]
		v, created, err := r.expandValue(f.Type, p.budget, core.NewContext(p.owner, f.Name))
		if err != nil {
			return err
		}
		p.owner.SetField(p.field, v)
		queue = append(queue, created...)
	}

	return nil
}

// expandValue produces a value of type t within budget, returning any
// deferred field expansions created along the way.
func (r *runner) expandValue(t core.TypeRef, budget int, ctx *core.Context) (core.Value, []pending, error) {
	// The budget gate runs before any draw, so a failing expansion never
	// consumes randomness or touches state.
	if dist := r.g.DistanceToTerminal(t); budget < 0 || budget < dist {
		return nil, nil, &BudgetError{Symbol: t.String(), Budget: budget, Required: dist}
	}

	switch {
	case t.IsPrimitive():
		return r.drawPrimitive(t), nil, nil

	case t.IsList():
		return r.expandList(t, budget, ctx)

	case t.IsAnnotated():
		v, err := r.applyGenerator(t, budget, ctx)

		return v, nil, err

	case t.IsSymbol():
		node, created, err := r.expandSymbol(t.SymbolName(), budget)

		return node, created, err

	default:
		return nil, nil, fmt.Errorf("%w: field type %s", ErrUnknownSymbol, t)
	}
}

// drawPrimitive draws one literal uniformly from the declared domain.
func (r *runner) drawPrimitive(t core.TypeRef) core.Value {
	switch t.Kind() {
	case core.KindInt:
		min, max := t.IntDomain()

		return core.IntVal(r.src.Int64(min, max))
	case core.KindFloat:
		min, max := t.FloatDomain()

		return core.FloatVal(r.src.Float64Range(min, max))
	case core.KindBool:
		return core.BoolVal(r.src.IntN(2) == 1)
	case core.KindEnum:
		return core.StrVal(rng.Choice(r.src, t.EnumDomain()))
	default:
		panic("synthesis: drawPrimitive on non-primitive") // unreachable, guarded by caller
	}
}

// expandList draws a uniform length in [0, budget−1] (0 when budget = 0)
// and synthesizes each element with one less budget. Elements are produced
// immediately; node-valued elements contribute their own deferred field
// expansions.
func (r *runner) expandList(t core.TypeRef, budget int, ctx *core.Context) (core.Value, []pending, error) {
	length := 0
	if budget > 0 {
		length = r.src.IntN(budget)
	}

	list := make(core.ListVal, length)
	var created []pending
	for i := 0; i < length; i++ {
		v, ps, err := r.expandValue(t.Elem(), budget-1, ctx)
		if err != nil {
			return nil, nil, err
		}
		list[i] = v
		created = append(created, ps...)
	}

	return list, created, nil
}

// applyGenerator delegates an annotated field to its metahandler. For an
// annotated list, the handler receives the element type as its base, with
// sizing left entirely to the handler.
func (r *runner) applyGenerator(t core.TypeRef, budget int, ctx *core.Context) (core.Value, error) {
	base := t.Base()
	if base.IsList() {
		base = base.Elem()
	}

	v, err := t.Gen().Generate(r.src, r.g, r.expander(ctx), budget, base, ctx.FieldName(), ctx)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", ctx.FieldName(), err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: field %q", ErrBadGenerator, ctx.FieldName())
	}

	return v, nil
}

// expander wraps the runner as the strict recursive capability handed to
// metahandlers: the returned value is fully resolved (its own deferred
// expansions are drained before returning).
func (r *runner) expander(ctx *core.Context) core.Expander {
	return func(budget int, t core.TypeRef) (core.Value, error) {
		v, created, err := r.expandValue(t, budget, ctx)
		if err != nil {
			return nil, err
		}
		if err = r.drain(created); err != nil {
			return nil, err
		}

		return v, nil
	}
}

// expandSymbol resolves a symbol reference to a concrete node. Abstract
// symbols are resolved alternative by alternative (an alternative may
// itself be abstract); the chosen concrete symbol is instantiated with one
// deferred expansion per field at budget−1.
func (r *runner) expandSymbol(name string, budget int) (*core.Node, []pending, error) {
	sym := r.g.Symbol(name)
	if sym == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
	}

	for sym.IsAbstract() {
		chosen, err := r.chooseAlternative(sym.Name(), budget)
		if err != nil {
			return nil, nil, err
		}
		sym = r.g.Symbol(chosen)
	}

	// Concrete production: instantiate and defer every field.
	node := core.NewNode(sym)
	fields := sym.Fields()
	created := make([]pending, 0, len(fields))
	for i := range fields {
		created = append(created, pending{owner: node, field: i, budget: budget - 1})
	}

	return node, created, nil
}

// chooseAlternative picks one production of an abstract symbol.
//
// Filter: alternatives whose distance-to-terminal exceeds the budget are
// excluded; if none survive, the expansion fails with ProductionError.
// Forced recursion: while any surviving alternative is recursive, the
// choice set is restricted to the recursive ones, which avoids
// systematically shallow trees while budget remains. The restriction runs
// before weighting; weighted choice then applies over the restricted set
// whenever a candidate carries an explicit weight.
func (r *runner) chooseAlternative(name string, budget int) (string, error) {
	alts := r.g.Alternatives(name)

	valid := make([]string, 0, len(alts))
	for _, alt := range alts {
		if r.g.SymbolDistance(alt) <= budget {
			valid = append(valid, alt)
		}
	}
	if len(valid) == 0 {
		dists := make(map[string]int, len(alts))
		for _, alt := range alts {
			dists[alt] = r.g.SymbolDistance(alt)
		}

		return "", &ProductionError{Symbol: name, Budget: budget, Distances: dists}
	}

	recursive := valid[:0:0]
	for _, alt := range valid {
		if r.g.IsRecursive(alt) {
			recursive = append(recursive, alt)
		}
	}
	if len(recursive) > 0 {
		valid = recursive
	}

	weighted := false
	for _, alt := range valid {
		if r.g.HasExplicitWeight(alt) {
			weighted = true

			break
		}
	}
	if weighted {
		weights := make([]float64, len(valid))
		for i, alt := range valid {
			weights[i] = r.g.Weight(alt)
		}

		return rng.WeightedChoice(r.src, valid, weights), nil
	}

	return rng.Choice(r.src, valid), nil
}
