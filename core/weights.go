package core

import "fmt"

// normalizeWeights installs the normalized production-weight table: within
// every sibling group (the alternatives of one non-terminal) weights sum
// to 1. Symbols declared without WithWeight contribute the default weight
// before normalization. Runs once during Extract.
func (g *Grammar) normalizeWeights() error {
	for _, name := range g.order {
		sym := g.symbols[name]
		g.weights[name] = sym.DeclaredWeight()
		g.explicit[name] = sym.hasWeight
	}

	return g.renormalize()
}

// renormalize rescales each sibling group in place so its weights sum to 1.
func (g *Grammar) renormalize() error {
	for _, name := range g.order {
		alts := g.alternatives[name]
		if len(alts) == 0 {
			continue
		}
		var total float64
		for _, alt := range alts {
			w := g.weights[alt]
			if w < 0 {
				return fmt.Errorf("%w: %q weight %g", ErrBadWeight, alt, w)
			}
			total += w
		}
		if !(total > 0) {
			return fmt.Errorf("%w: alternatives of %q sum to %g", ErrBadWeight, name, total)
		}
		for _, alt := range alts {
			g.weights[alt] /= total
		}
	}

	return nil
}

// UpdateWeights returns a new Grammar whose production weights have been
// nudged by learningRate·extra[name] and renormalized per sibling group,
// after which the fixpoint analyzer is re-run. Symbols absent from extra
// keep their current weight.
//
// The receiver is never mutated: adaptive reweighting produces fresh
// Grammar values, so concurrent readers of the old grammar (and prior
// generations kept alive for elitism) are unaffected.
//
// Every alternative of the new grammar carries an explicit weight, so
// synthesis switches to weighted choice for all its sibling groups.
func (g *Grammar) UpdateWeights(learningRate float64, extra map[string]float64) (*Grammar, error) {
	ng := g.clone()

	for _, name := range ng.order {
		alts := ng.alternatives[name]
		for _, alt := range alts {
			w := ng.weights[alt] + learningRate*extra[alt]
			if w != w {
				return nil, fmt.Errorf("UpdateWeights: %w: %q is NaN", ErrBadWeight, alt)
			}
			if w < 0 {
				return nil, fmt.Errorf("UpdateWeights: %w: %q becomes %g", ErrBadWeight, alt, w)
			}
			ng.weights[alt] = w
			ng.explicit[alt] = true
		}
	}
	if err := ng.renormalize(); err != nil {
		return nil, fmt.Errorf("UpdateWeights: %w", err)
	}

	// Weight updates always force a re-preprocess.
	ng.preprocess()

	return ng, nil
}

// clone copies the mutable derived state of g into a fresh Grammar.
// Symbol and alternative tables are immutable and shared.
func (g *Grammar) clone() *Grammar {
	ng := &Grammar{
		start:        g.start,
		order:        g.order,
		symbols:      g.symbols,
		alternatives: g.alternatives,
		terminals:    g.terminals,
		nonTerminals: g.nonTerminals,
		recursive:    make(map[string]struct{}, len(g.recursive)),
		distance:     make(map[string]int, len(g.distance)),
		abstractSteps: func() map[string]map[string]int {
			m := make(map[string]map[string]int, len(g.abstractSteps))
			for k, v := range g.abstractSteps {
				inner := make(map[string]int, len(v))
				for kk, vv := range v {
					inner[kk] = vv
				}
				m[k] = inner
			}

			return m
		}(),
		weights:  make(map[string]float64, len(g.weights)),
		explicit: make(map[string]bool, len(g.explicit)),
	}
	for k := range g.recursive {
		ng.recursive[k] = struct{}{}
	}
	for k, v := range g.distance {
		ng.distance[k] = v
	}
	for k, v := range g.weights {
		ng.weights[k] = v
	}
	for k, v := range g.explicit {
		ng.explicit[k] = v
	}

	return ng
}
