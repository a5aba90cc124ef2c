package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for grammar construction. Branch with errors.Is; call
// sites attach context via %w wrapping.
var (
	// ErrInvalidGrammar indicates a declaration that is neither abstract nor
	// fully field-typed, or otherwise malformed (duplicate symbol names,
	// fields on an abstract symbol, empty enum domain, inverted ranges,
	// cyclic supertype chains).
	ErrInvalidGrammar = errors.New("core: invalid grammar")

	// ErrNotAbstract indicates an alternative registered on a symbol that is
	// not abstract.
	ErrNotAbstract = errors.New("core: alternative registered on non-abstract symbol")

	// ErrUnknownSymbol indicates a reference to a symbol that was never declared.
	ErrUnknownSymbol = errors.New("core: unknown symbol")

	// ErrNoFiniteExpansion indicates the starting symbol keeps an infinite
	// distance-to-terminal after the fixpoint converged: no finite tree can
	// complete it, so the grammar is unusable for generation.
	ErrNoFiniteExpansion = errors.New("core: starting symbol cannot reach a terminal")

	// ErrBadWeight indicates a production weight that is zero, negative or
	// non-finite.
	ErrBadWeight = errors.New("core: production weight must be positive and finite")
)

// Infinity is the distance-to-terminal of a symbol that cannot be completed
// by any finite tree. Distances strictly below Infinity are exact minima.
const Infinity = math.MaxInt32

// Kind enumerates the closed algebra of field types.
type Kind uint8

const (
	// KindInvalid is the zero TypeRef: a field left untyped.
	KindInvalid Kind = iota

	// KindInt is an integer primitive with an inclusive domain.
	KindInt

	// KindFloat is a float primitive with a half-open domain.
	KindFloat

	// KindBool is a boolean primitive.
	KindBool

	// KindEnum is a string primitive over a declared literal set.
	KindEnum

	// KindSymbol references a declared symbol.
	KindSymbol

	// KindList is a sequence type.
	KindList

	// KindAnnotated carries a metahandler over a base type.
	KindAnnotated
)

// TypeRef is a reference to a field type: a primitive with a declared
// domain, a declared symbol, a sequence, or a metahandler-annotated type.
//
// TypeRef values are immutable and comparable only through their accessors;
// construct them exclusively via Int, Float, Bool, Enum, Ref, ListOf and
// Annotated.
type TypeRef struct {
	kind Kind

	sym  string    // KindSymbol: referenced symbol name
	elem *TypeRef  // KindList: element type; KindAnnotated: base type
	gen  Generator // KindAnnotated: opaque generator tag

	intMin, intMax     int64   // KindInt domain (inclusive)
	floatMin, floatMax float64 // KindFloat domain (half-open)
	enum               []string
}

// Int declares an integer primitive drawing uniformly from the inclusive
// domain [min, max].
func Int(min, max int64) TypeRef {
	return TypeRef{kind: KindInt, intMin: min, intMax: max}
}

// Float declares a float primitive drawing uniformly from [min, max).
func Float(min, max float64) TypeRef {
	return TypeRef{kind: KindFloat, floatMin: min, floatMax: max}
}

// Bool declares a boolean primitive.
func Bool() TypeRef {
	return TypeRef{kind: KindBool}
}

// Enum declares a string primitive drawing uniformly from the given
// literal set.
func Enum(vals ...string) TypeRef {
	return TypeRef{kind: KindEnum, enum: append([]string(nil), vals...)}
}

// Ref declares a reference to the symbol with the given name. The symbol
// must be declared in the same Extract call.
func Ref(name string) TypeRef {
	return TypeRef{kind: KindSymbol, sym: name}
}

// ListOf declares a sequence of elem. Nesting is allowed.
func ListOf(elem TypeRef) TypeRef {
	e := elem

	return TypeRef{kind: KindList, elem: &e}
}

// Annotated attaches a metahandler to base. The generator tag is opaque
// metadata: the base type is still registered transitively, but value
// production for the field is delegated entirely to gen.
func Annotated(base TypeRef, gen Generator) TypeRef {
	b := base

	return TypeRef{kind: KindAnnotated, elem: &b, gen: gen}
}

// Kind returns the type-reference kind.
func (t TypeRef) Kind() Kind { return t.kind }

// IsPrimitive reports whether t is an int, float, bool or enum domain.
func (t TypeRef) IsPrimitive() bool {
	switch t.kind {
	case KindInt, KindFloat, KindBool, KindEnum:
		return true
	default:
		return false
	}
}

// IsSymbol reports whether t references a declared symbol.
func (t TypeRef) IsSymbol() bool { return t.kind == KindSymbol }

// IsList reports whether t is a sequence type.
func (t TypeRef) IsList() bool { return t.kind == KindList }

// IsAnnotated reports whether t carries a metahandler.
func (t TypeRef) IsAnnotated() bool { return t.kind == KindAnnotated }

// SymbolName returns the referenced symbol name, or "" if t is not a
// symbol reference.
func (t TypeRef) SymbolName() string { return t.sym }

// Elem returns the element type of a list. Zero TypeRef otherwise.
func (t TypeRef) Elem() TypeRef {
	if t.kind == KindList && t.elem != nil {
		return *t.elem
	}

	return TypeRef{}
}

// Base returns the underlying type of an annotated reference.
// Zero TypeRef otherwise.
func (t TypeRef) Base() TypeRef {
	if t.kind == KindAnnotated && t.elem != nil {
		return *t.elem
	}

	return TypeRef{}
}

// Gen returns the metahandler of an annotated reference, nil otherwise.
func (t TypeRef) Gen() Generator { return t.gen }

// IntDomain returns the inclusive integer domain of an Int reference.
func (t TypeRef) IntDomain() (min, max int64) { return t.intMin, t.intMax }

// FloatDomain returns the half-open float domain of a Float reference.
func (t TypeRef) FloatDomain() (min, max float64) { return t.floatMin, t.floatMax }

// EnumDomain returns the literal set of an Enum reference.
// The returned slice must not be modified.
func (t TypeRef) EnumDomain() []string { return t.enum }

// String renders t the way productions are printed: "int[0..9]",
// "float[0..1)", "bool", "enum{x|y}", "Expr", "[Expr]", "Expr~".
func (t TypeRef) String() string {
	switch t.kind {
	case KindInt:
		return fmt.Sprintf("int[%d..%d]", t.intMin, t.intMax)
	case KindFloat:
		return fmt.Sprintf("float[%g..%g)", t.floatMin, t.floatMax)
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum{" + strings.Join(t.enum, "|") + "}"
	case KindSymbol:
		return t.sym
	case KindList:
		return "[" + t.elem.String() + "]"
	case KindAnnotated:
		return t.elem.String() + "~"
	default:
		return "<invalid>"
	}
}

// validate reports why t cannot appear in a grammar, or nil.
func (t TypeRef) validate() error {
	switch t.kind {
	case KindInt:
		if t.intMin > t.intMax {
			return fmt.Errorf("%w: inverted int domain [%d..%d]", ErrInvalidGrammar, t.intMin, t.intMax)
		}

		return nil
	case KindFloat:
		if !(t.floatMin <= t.floatMax) || math.IsNaN(t.floatMin) || math.IsNaN(t.floatMax) {
			return fmt.Errorf("%w: invalid float domain [%g..%g)", ErrInvalidGrammar, t.floatMin, t.floatMax)
		}

		return nil
	case KindBool:
		return nil
	case KindEnum:
		if len(t.enum) == 0 {
			return fmt.Errorf("%w: empty enum domain", ErrInvalidGrammar)
		}

		return nil
	case KindSymbol:
		if t.sym == "" {
			return fmt.Errorf("%w: empty symbol reference", ErrInvalidGrammar)
		}

		return nil
	case KindList:
		if t.elem == nil {
			return fmt.Errorf("%w: list without element type", ErrInvalidGrammar)
		}

		return t.elem.validate()
	case KindAnnotated:
		if t.elem == nil || t.gen == nil {
			return fmt.Errorf("%w: annotated type needs a base type and a generator", ErrInvalidGrammar)
		}

		return t.elem.validate()
	default:
		return fmt.Errorf("%w: field type not annotated", ErrInvalidGrammar)
	}
}

// referencedSymbols appends to dst every symbol name reachable through t,
// recursing into list elements and annotated base types. The metahandler
// tag itself is opaque metadata and never expanded.
func (t TypeRef) referencedSymbols(dst []string) []string {
	switch t.kind {
	case KindSymbol:
		return append(dst, t.sym)
	case KindList, KindAnnotated:
		if t.elem != nil {
			return t.elem.referencedSymbols(dst)
		}

		return dst
	default:
		return dst
	}
}
