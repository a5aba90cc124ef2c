package core

import "fmt"

// registry accumulates declarations before validation. It preserves
// declaration order so that alternatives lists, fixpoint sweeps and weight
// normalization are deterministic.
type registry struct {
	order   []string
	symbols map[string]*Symbol
}

// add registers one symbol, rejecting duplicates.
func (r *registry) add(s *Symbol) error {
	if _, dup := r.symbols[s.name]; dup {
		return fmt.Errorf("%w: symbol %q declared twice", ErrInvalidGrammar, s.name)
	}
	r.symbols[s.name] = s
	r.order = append(r.order, s.name)

	return nil
}

// Extract is the single orchestrator that turns declarations into a usable
// production system. It mirrors the declaration order in every derived
// structure, so the same declarations always yield the same Grammar.
//
// Steps:
//  1. Apply every Decl in order, building the symbol table.
//  2. Validate each declaration: field types fully annotated, referenced
//     symbols declared, supertypes abstract (ErrNotAbstract otherwise) and
//     their Extends chains acyclic.
//  3. Wire the alternatives map from the Extends relations.
//  4. Run the fixpoint analyzer: distance-to-terminal per symbol,
//     reachability, recursive flags, abstract step distances.
//  5. Normalize explicit production weights per sibling group and re-run
//     the analyzer (weight updates always force a re-preprocess).
//  6. Reject a starting symbol whose distance stayed infinite
//     (ErrNoFiniteExpansion) — the explicit diagnostic that replaces what
//     would otherwise become an infinite generation loop.
//
// Complexity: O(S·A·F) per fixpoint sweep for S symbols, A alternatives and
// F fields; the fixpoint converges in at most S sweeps.
func Extract(start string, decls ...Decl) (*Grammar, error) {
	// 1) Apply declarations in order.
	reg := &registry{symbols: make(map[string]*Symbol, len(decls))}
	for i, d := range decls {
		if d == nil {
			return nil, fmt.Errorf("%w: nil declaration at index %d", ErrInvalidGrammar, i)
		}
		if err := d(reg); err != nil {
			return nil, fmt.Errorf("Extract: %w", err)
		}
	}

	// 2) Validate every symbol against the completed table.
	if err := reg.validate(start); err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}

	// 3) Assemble the Grammar value.
	g := &Grammar{
		start:         start,
		order:         reg.order,
		symbols:       reg.symbols,
		alternatives:  make(map[string][]string),
		terminals:     make(map[string]struct{}),
		nonTerminals:  make(map[string]struct{}),
		recursive:     make(map[string]struct{}),
		distance:      make(map[string]int, len(reg.order)),
		abstractSteps: make(map[string]map[string]int),
		weights:       make(map[string]float64, len(reg.order)),
		explicit:      make(map[string]bool),
	}
	for _, name := range g.order {
		sym := g.symbols[name]
		if sym.parent != "" {
			// Extends wires super → sym, in declaration order.
			g.alternatives[sym.parent] = append(g.alternatives[sym.parent], name)
		}
		if sym.abstract || len(sym.fields) > 0 {
			g.nonTerminals[name] = struct{}{}
		} else {
			g.terminals[name] = struct{}{}
		}
	}

	// 4) Fixpoint reachability / distance analysis.
	g.preprocess()

	// 5) Weight normalization, then a forced re-preprocess.
	if err := g.normalizeWeights(); err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}
	g.preprocess()

	// 6) The starting symbol must be completable by a finite tree.
	if g.distance[start] >= Infinity {
		return nil, fmt.Errorf("Extract: %w: %q", ErrNoFiniteExpansion, start)
	}

	return g, nil
}

// validate checks the completed symbol table: every referenced symbol is
// declared, every supertype is abstract, every field type is fully
// annotated, supertype chains are acyclic, and the starting symbol exists.
func (r *registry) validate(start string) error {
	if _, ok := r.symbols[start]; !ok {
		return fmt.Errorf("%w: starting symbol %q", ErrUnknownSymbol, start)
	}
	for _, name := range r.order {
		sym := r.symbols[name]
		if sym.parent != "" {
			super, ok := r.symbols[sym.parent]
			if !ok {
				return fmt.Errorf("%w: %q extends undeclared %q", ErrUnknownSymbol, name, sym.parent)
			}
			if !super.abstract {
				return fmt.Errorf("%w: %q -> %q", ErrNotAbstract, sym.parent, name)
			}
		}
		if err := r.checkSupertypeChain(sym); err != nil {
			return err
		}
		for _, f := range sym.fields {
			if err := f.Type.validate(); err != nil {
				return fmt.Errorf("symbol %q field %q: %w", name, f.Name, err)
			}
			for _, ref := range f.Type.referencedSymbols(nil) {
				if _, ok := r.symbols[ref]; !ok {
					return fmt.Errorf("%w: %q field %q references %q", ErrUnknownSymbol, name, f.Name, ref)
				}
			}
		}
	}

	return nil
}

// checkSupertypeChain rejects cycles in the Extends chain starting at sym.
// A cycle of abstract supertypes keeps every distance finite (some concrete
// alternative hangs off the cycle) yet can make abstract resolution loop
// without ever reaching a concrete production, so it is invalid outright;
// it adds no expressive power over the acyclic chain.
func (r *registry) checkSupertypeChain(sym *Symbol) error {
	seen := map[string]bool{sym.name: true}
	for cur := sym.parent; cur != ""; {
		if seen[cur] {
			return fmt.Errorf("%w: supertype cycle through %q", ErrInvalidGrammar, cur)
		}
		seen[cur] = true
		next, ok := r.symbols[cur]
		if !ok {
			return nil // undeclared supertypes are reported separately
		}
		cur = next.parent
	}

	return nil
}
