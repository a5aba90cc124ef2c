package core

// preprocess runs the fixpoint reachability analysis over all registered
// symbols. It (re)computes three derived structures:
//
//   - distance: each symbol's minimal distance-to-terminal. Abstract
//     symbols take the minimum over their alternatives; a concrete symbol
//     with fields costs 1 + the maximum of its field-type distances; a
//     field-less concrete symbol costs 1; primitives cost 0. Symbols whose
//     distance stays at Infinity cannot be completed by any finite tree.
//   - recursive: symbols reachable from themselves through alternatives or
//     fields. Synthesis uses these flags for its forced-recursive rule.
//   - abstractSteps: per abstract symbol, the minimal number of production
//     steps to each reachable alternative.
//
// The sweep repeats until no value changes. Every sweep walks symbols in
// declaration order, so the computation is deterministic. Termination is
// guaranteed: distances only decrease and reachability sets only grow.
func (g *Grammar) preprocess() {
	// Reset derived state; preprocess may run more than once per grammar.
	for _, name := range g.order {
		g.distance[name] = Infinity
	}
	g.recursive = make(map[string]struct{})
	g.abstractSteps = make(map[string]map[string]int)

	// reach[x] is the set of symbols from which x is reachable.
	reach := make(map[string]map[string]struct{}, len(g.order))
	for _, name := range g.order {
		reach[name] = make(map[string]struct{})
	}

	for changed := true; changed; {
		changed = false
		for _, name := range g.order {
			sym := g.symbols[name]
			old := g.distance[name]
			val := old

			switch {
			case sym.abstract:
				for _, alt := range g.alternatives[name] {
					if d := g.distance[alt]; d < val {
						val = d
					}
					changed = g.relaxSteps(name, alt) || changed
				}
				changed = g.propagateReach(reach, name, g.alternatives[name]) || changed

			case len(sym.fields) == 0:
				// Terminal production: one node, done.
				val = 1

			default:
				val = g.fieldDistance(sym)
				changed = g.propagateReach(reach, name, fieldSymbols(sym)) || changed
			}

			if val < old {
				g.distance[name] = val
				changed = true
			}
		}
	}

	// A symbol that reaches itself is recursive.
	for _, name := range g.order {
		if _, self := reach[name][name]; self {
			g.recursive[name] = struct{}{}
		}
	}
}

// fieldDistance returns 1 + the maximum field-type distance of a concrete
// symbol, saturating at Infinity.
func (g *Grammar) fieldDistance(sym *Symbol) int {
	val := 0
	for _, f := range sym.fields {
		d := g.DistanceToTerminal(f.Type)
		if d >= Infinity {
			return Infinity
		}
		if d+1 > val {
			val = d + 1
		}
	}

	return val
}

// relaxSteps updates abstractSteps for the edge super → alt: the direct
// step distance is 1, and every alternative reachable from alt is one step
// farther from super. Reports whether anything changed.
func (g *Grammar) relaxSteps(super, alt string) bool {
	steps := g.abstractSteps[super]
	if steps == nil {
		steps = make(map[string]int)
		g.abstractSteps[super] = steps
	}
	changed := false
	if d, ok := steps[alt]; !ok || d > 1 {
		steps[alt] = 1
		changed = true
	}
	for sub, d := range g.abstractSteps[alt] {
		if cur, ok := steps[sub]; !ok || d+1 < cur {
			steps[sub] = d + 1
			changed = true
		}
	}

	return changed
}

// propagateReach records that each symbol in dsts is reachable from src
// (and transitively from everything that reaches src). Reports whether any
// set grew.
func (g *Grammar) propagateReach(reach map[string]map[string]struct{}, src string, dsts []string) bool {
	changed := false
	srcReach := reach[src]
	for _, dst := range dsts {
		set := reach[dst]
		if set == nil {
			continue // undeclared references are caught by validate
		}
		before := len(set)
		set[src] = struct{}{}
		for anc := range srcReach {
			set[anc] = struct{}{}
		}
		if len(set) != before {
			changed = true
		}
	}

	return changed
}

// fieldSymbols lists the symbols referenced by a concrete symbol's fields,
// recursing through list elements and annotated base types.
func fieldSymbols(sym *Symbol) []string {
	var out []string
	for _, f := range sym.fields {
		out = f.Type.referencedSymbols(out)
	}

	return out
}
