package core

import (
	"fmt"
	"strings"
)

// Grammar is the production system derived from a set of declarations.
//
// A Grammar is immutable once Extract returns it: every accessor is
// read-only and the value is safe to share across concurrent callers.
// UpdateWeights returns a new Grammar rather than mutating the receiver.
type Grammar struct {
	start string

	// order preserves declaration order for deterministic iteration.
	order   []string
	symbols map[string]*Symbol

	// alternatives maps an abstract symbol to its ordered producers.
	alternatives map[string][]string

	terminals    map[string]struct{}
	nonTerminals map[string]struct{}
	recursive    map[string]struct{}

	// distance holds each symbol's minimal distance-to-terminal
	// (Infinity when the symbol cannot be completed).
	distance map[string]int

	// abstractSteps[super][alt] is the minimal number of production steps
	// from the abstract symbol super to the reachable alternative alt.
	abstractSteps map[string]map[string]int

	// weights holds normalized production weights: sibling alternatives of
	// each non-terminal sum to 1. explicit marks symbols whose weight was
	// declared (or set by UpdateWeights) rather than defaulted.
	weights  map[string]float64
	explicit map[string]bool
}

// Start returns the starting symbol name.
func (g *Grammar) Start() string { return g.start }

// Symbol returns the named symbol, or nil when it is not registered.
func (g *Grammar) Symbol(name string) *Symbol { return g.symbols[name] }

// Symbols returns all registered symbol names in declaration order.
// The slice must not be modified.
func (g *Grammar) Symbols() []string { return g.order }

// Alternatives returns the ordered producers of an abstract symbol.
// The slice must not be modified; nil for symbols without alternatives.
func (g *Grammar) Alternatives(name string) []string { return g.alternatives[name] }

// IsTerminal reports whether name is concrete with no fields.
func (g *Grammar) IsTerminal(name string) bool {
	_, ok := g.terminals[name]

	return ok
}

// IsRecursive reports whether name is reachable from itself through its
// alternatives or fields.
func (g *Grammar) IsRecursive(name string) bool {
	_, ok := g.recursive[name]

	return ok
}

// SymbolDistance returns the minimal distance-to-terminal of a registered
// symbol, or Infinity for unknown or uncompletable symbols.
func (g *Grammar) SymbolDistance(name string) int {
	if d, ok := g.distance[name]; ok {
		return d
	}

	return Infinity
}

// DistanceToTerminal returns the minimal distance-to-terminal of an
// arbitrary type reference: primitives are 0, a sequence costs what its
// element costs, an annotated type costs what its base costs.
func (g *Grammar) DistanceToTerminal(t TypeRef) int {
	switch {
	case t.IsPrimitive():
		return 0
	case t.IsList():
		return g.DistanceToTerminal(t.Elem())
	case t.IsAnnotated():
		return g.DistanceToTerminal(t.Base())
	case t.IsSymbol():
		return g.SymbolDistance(t.SymbolName())
	default:
		return Infinity
	}
}

// MinTreeDepth returns the minimum depth any tree of this grammar must
// have: the starting symbol's distance-to-terminal.
func (g *Grammar) MinTreeDepth() int { return g.SymbolDistance(g.start) }

// MaxNodeDepth returns the maximum over all symbols of the minimal depth
// that symbol requires.
func (g *Grammar) MaxNodeDepth() int {
	max := 0
	for _, name := range g.order {
		if d := g.distance[name]; d > max {
			max = d
		}
	}

	return max
}

// AbstractStepDistance returns the minimal number of production steps from
// the abstract symbol super to the alternative alt, or Infinity when alt
// is unreachable from super.
func (g *Grammar) AbstractStepDistance(super, alt string) int {
	if steps, ok := g.abstractSteps[super]; ok {
		if d, ok := steps[alt]; ok {
			return d
		}
	}

	return Infinity
}

// Weight returns the normalized production weight of a symbol
// (1 for symbols that are not an alternative of any non-terminal).
func (g *Grammar) Weight(name string) float64 {
	if w, ok := g.weights[name]; ok {
		return w
	}

	return defaultWeight
}

// HasExplicitWeight reports whether the symbol's weight was declared
// explicitly (or installed by UpdateWeights) rather than defaulted.
func (g *Grammar) HasExplicitWeight(name string) bool { return g.explicit[name] }

// String renders the production system, one rule per non-terminal:
//
//	Grammar<Starting=Expr,Productions=[Expr -> Plus(Left: Expr, Right: Expr)<0.75> | One()]>
//
// Alternatives appear in declaration order; explicit weights are printed in
// angle brackets.
func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("Grammar<Starting=")
	b.WriteString(g.start)
	b.WriteString(",Productions=[")
	first := true
	for _, name := range g.order {
		alts, ok := g.alternatives[name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(";")
		}
		first = false
		b.WriteString(name)
		b.WriteString(" -> ")
		for i, alt := range alts {
			if i > 0 {
				b.WriteString(" | ")
			}
			g.writeProduction(&b, alt)
		}
	}
	b.WriteString("]>")

	return b.String()
}

// writeProduction renders one alternative with its schema and weight.
func (g *Grammar) writeProduction(b *strings.Builder, name string) {
	b.WriteString(name)
	b.WriteString("(")
	for i, f := range g.symbols[name].fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteString(")")
	if g.explicit[name] {
		fmt.Fprintf(b, "<%g>", g.weights[name])
	}
}

// Summary aggregates structural grammar properties: the depth range a tree
// can be forced into, how many non-terminals exist, and production
// statistics.
type Summary struct {
	// MinDepth is the minimum depth any complete tree must have.
	MinDepth int

	// MaxDepth is the maximum minimal depth over all symbols.
	MaxDepth int

	// NonTerminals is the number of symbols owning alternatives.
	NonTerminals int

	// RecursiveProductions counts recursive concrete productions.
	RecursiveProductions int

	// TotalProductions counts all alternatives across non-terminals.
	TotalProductions int

	// AverageProductions is TotalProductions / NonTerminals.
	AverageProductions float64
}

// Summarize computes the grammar property summary.
func (g *Grammar) Summarize() Summary {
	s := Summary{
		MinDepth: g.MinTreeDepth(),
		MaxDepth: g.MaxNodeDepth(),
	}
	for _, name := range g.order {
		alts, ok := g.alternatives[name]
		if ok {
			s.NonTerminals++
			s.TotalProductions += len(alts)
		}
		if !ok && g.IsRecursive(name) {
			s.RecursiveProductions++
		}
	}
	if s.NonTerminals > 0 {
		s.AverageProductions = float64(s.TotalProductions) / float64(s.NonTerminals)
	}

	return s
}
