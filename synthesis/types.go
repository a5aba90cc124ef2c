package synthesis

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by the synthesizer. Branch with errors.Is;
// BudgetError and ProductionError unwrap to these.
var (
	// ErrNilSource indicates a nil rng.Source was passed.
	ErrNilSource = errors.New("synthesis: random source is nil")

	// ErrNilGrammar indicates a nil *core.Grammar was passed.
	ErrNilGrammar = errors.New("synthesis: grammar is nil")

	// ErrUnknownSymbol indicates the requested symbol is not registered in
	// the grammar.
	ErrUnknownSymbol = errors.New("synthesis: symbol not in grammar")

	// ErrBudgetExceeded indicates the depth budget is negative or below the
	// target type's minimal distance-to-terminal. Raised at entry, before
	// any random draw is consumed.
	ErrBudgetExceeded = errors.New("synthesis: recursion depth budget exceeded")

	// ErrNoProduction indicates an abstract symbol whose alternatives are
	// all excluded by the current budget.
	ErrNoProduction = errors.New("synthesis: no valid production within budget")

	// ErrBadGenerator indicates a metahandler returned no value and no error.
	ErrBadGenerator = errors.New("synthesis: metahandler returned no value")
)

// BudgetError reports a depth budget too small for the requested type.
// It unwraps to ErrBudgetExceeded.
type BudgetError struct {
	// Symbol is the type that could not be afforded.
	Symbol string

	// Budget is the depth budget that was provided.
	Budget int

	// Required is the type's minimal distance-to-terminal.
	Required int
}

// Error implements error.
func (e *BudgetError) Error() string {
	return fmt.Sprintf("synthesis: depth budget exhausted for %s (provided %d, required %d)", e.Symbol, e.Budget, e.Required)
}

// Unwrap lets errors.Is(err, ErrBudgetExceeded) succeed.
func (e *BudgetError) Unwrap() error { return ErrBudgetExceeded }

// ProductionError reports an abstract symbol none of whose alternatives
// fits the current budget. It unwraps to ErrNoProduction.
type ProductionError struct {
	// Symbol is the abstract symbol being expanded.
	Symbol string

	// Budget is the depth budget at the expansion point.
	Budget int

	// Distances maps each alternative to its minimal distance-to-terminal.
	Distances map[string]int
}

// Error implements error, listing alternatives in sorted order so the
// message is deterministic.
func (e *ProductionError) Error() string {
	alts := make([]string, 0, len(e.Distances))
	for alt := range e.Distances {
		alts = append(alts, alt)
	}
	sort.Strings(alts)
	var b strings.Builder
	fmt.Fprintf(&b, "synthesis: no production for %s fits depth %d (", e.Symbol, e.Budget)
	for i, alt := range alts {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s needs %d", alt, e.Distances[alt])
	}
	b.WriteString(")")

	return b.String()
}

// Unwrap lets errors.Is(err, ErrNoProduction) succeed.
func (e *ProductionError) Unwrap() error { return ErrNoProduction }
