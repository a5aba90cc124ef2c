package metahandlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/rng"
)

// ErrBadHandler indicates a misconfigured metahandler: inverted range,
// empty option set or empty alphabet. Configuration is a programmer
// responsibility, so the error is explicit rather than coerced away.
var ErrBadHandler = errors.New("metahandlers: invalid handler configuration")

// IntRange draws a uniform integer in the inclusive range [Min, Max].
type IntRange struct {
	Min, Max int64
}

// Generate implements core.Generator.
func (h IntRange) Generate(src rng.Source, _ *core.Grammar, _ core.Expander, _ int, _ core.TypeRef, field string, _ *core.Context) (core.Value, error) {
	if h.Min > h.Max {
		return nil, fmt.Errorf("%w: IntRange[%d..%d] on field %q", ErrBadHandler, h.Min, h.Max, field)
	}

	return core.IntVal(src.Int64(h.Min, h.Max)), nil
}

// String renders the handler the way productions print it.
func (h IntRange) String() string { return fmt.Sprintf("[%d...%d]", h.Min, h.Max) }

// FloatRange draws a uniform float in [Min, Max).
type FloatRange struct {
	Min, Max float64
}

// Generate implements core.Generator.
func (h FloatRange) Generate(src rng.Source, _ *core.Grammar, _ core.Expander, _ int, _ core.TypeRef, field string, _ *core.Context) (core.Value, error) {
	if !(h.Min <= h.Max) {
		return nil, fmt.Errorf("%w: FloatRange[%g..%g) on field %q", ErrBadHandler, h.Min, h.Max, field)
	}

	return core.FloatVal(src.Float64Range(h.Min, h.Max)), nil
}

// String renders the handler the way productions print it.
func (h FloatRange) String() string { return fmt.Sprintf("[%g...%g]", h.Min, h.Max) }

// ListSizeBetween draws a list length uniformly in [Min, Max] — fixing the
// size independently of the depth budget, unlike plain sequence fields —
// and synthesizes each element with one less budget via the recursive
// callback.
type ListSizeBetween struct {
	Min, Max int
}

// Generate implements core.Generator. base is the element type of the
// annotated list.
func (h ListSizeBetween) Generate(src rng.Source, _ *core.Grammar, expand core.Expander, budget int, base core.TypeRef, field string, _ *core.Context) (core.Value, error) {
	if h.Min < 0 || h.Min > h.Max {
		return nil, fmt.Errorf("%w: ListSizeBetween[%d..%d] on field %q", ErrBadHandler, h.Min, h.Max, field)
	}

	length := h.Min + int(src.Int64(0, int64(h.Max-h.Min)))
	list := make(core.ListVal, length)
	for i := 0; i < length; i++ {
		v, err := expand(budget-1, base)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}

	return list, nil
}

// String renders the handler the way productions print it.
func (h ListSizeBetween) String() string { return fmt.Sprintf("ListSizeBetween[%d...%d]", h.Min, h.Max) }

// VarRange draws uniformly from a fixed set of named options — the
// categorical/variable-choice handler.
type VarRange struct {
	Options []string
}

// Generate implements core.Generator.
func (h VarRange) Generate(src rng.Source, _ *core.Grammar, _ core.Expander, _ int, _ core.TypeRef, field string, _ *core.Context) (core.Value, error) {
	if len(h.Options) == 0 {
		return nil, fmt.Errorf("%w: VarRange with no options on field %q", ErrBadHandler, field)
	}

	return core.StrVal(rng.Choice(src, h.Options)), nil
}

// String renders the handler the way productions print it.
func (h VarRange) String() string { return "[" + strings.Join(h.Options, ",") + "]" }

// StringSizeBetween draws a string whose length is uniform in [Min, Max]
// and whose characters come uniformly from Alphabet.
type StringSizeBetween struct {
	Min, Max int
	Alphabet []string
}

// Generate implements core.Generator.
func (h StringSizeBetween) Generate(src rng.Source, _ *core.Grammar, _ core.Expander, _ int, _ core.TypeRef, field string, _ *core.Context) (core.Value, error) {
	if h.Min < 0 || h.Min > h.Max || len(h.Alphabet) == 0 {
		return nil, fmt.Errorf("%w: StringSizeBetween[%d..%d] over %d letters on field %q", ErrBadHandler, h.Min, h.Max, len(h.Alphabet), field)
	}

	length := h.Min + int(src.Int64(0, int64(h.Max-h.Min)))
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteString(rng.Choice(src, h.Alphabet))
	}

	return core.StrVal(b.String()), nil
}

// String renders the handler the way productions print it.
func (h StringSizeBetween) String() string {
	return fmt.Sprintf("StringSizeBetween[%d...%d]", h.Min, h.Max)
}
