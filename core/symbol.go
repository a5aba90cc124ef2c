package core

import "fmt"

// Field is one (name, type) entry of a concrete symbol's ordered schema.
type Field struct {
	// Name identifies the field within its symbol.
	Name string

	// Type is the declared field type.
	Type TypeRef
}

// Symbol is a registered node type: abstract (a non-terminal standing for a
// choice among alternatives) or concrete (an internal production with typed
// fields, or a terminal when it has none).
//
// Symbols are immutable once their Grammar is extracted.
type Symbol struct {
	name      string
	abstract  bool
	parent    string // declared supertype, "" when the symbol has none
	fields    []Field
	weight    float64
	hasWeight bool
}

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name }

// IsAbstract reports whether s is a non-terminal.
func (s *Symbol) IsAbstract() bool { return s.abstract }

// Parent returns the declared supertype name, or "" when s extends nothing.
func (s *Symbol) Parent() string { return s.parent }

// Fields returns the ordered field schema. The slice must not be modified.
func (s *Symbol) Fields() []Field { return s.fields }

// IsTerminal reports whether s is concrete with no typed fields.
func (s *Symbol) IsTerminal() bool { return !s.abstract && len(s.fields) == 0 }

// HasExplicitWeight reports whether the declaration carried WithWeight.
func (s *Symbol) HasExplicitWeight() bool { return s.hasWeight }

// DeclaredWeight returns the raw declared weight (1 when none was given).
// Normalized weights live on the Grammar.
func (s *Symbol) DeclaredWeight() float64 {
	if !s.hasWeight {
		return defaultWeight
	}

	return s.weight
}

// defaultWeight is the implicit weight of productions declared without
// WithWeight.
const defaultWeight = 1.0

// SymbolOption configures a symbol declaration before registration.
type SymbolOption func(*Symbol) error

// Extends declares the supertype of a symbol, registering the production
// super → symbol. Extract fails with ErrNotAbstract if super is concrete.
func Extends(super string) SymbolOption {
	return func(s *Symbol) error {
		if super == "" {
			return fmt.Errorf("%w: %q extends an empty supertype name", ErrInvalidGrammar, s.name)
		}
		s.parent = super

		return nil
	}
}

// WithField appends one typed field to a concrete symbol's schema.
// Field order is the declaration order.
func WithField(name string, t TypeRef) SymbolOption {
	return func(s *Symbol) error {
		if name == "" {
			return fmt.Errorf("%w: %q declares a field with an empty name", ErrInvalidGrammar, s.name)
		}
		for _, f := range s.fields {
			if f.Name == name {
				return fmt.Errorf("%w: %q declares field %q twice", ErrInvalidGrammar, s.name, name)
			}
		}
		s.fields = append(s.fields, Field{Name: name, Type: t})

		return nil
	}
}

// WithWeight attaches an explicit production weight. Weights of sibling
// alternatives are renormalized to sum to 1 during Extract.
func WithWeight(w float64) SymbolOption {
	return func(s *Symbol) error {
		if !(w > 0) || w != w || w > 1e308 {
			return fmt.Errorf("%w: %q weight %g", ErrBadWeight, s.name, w)
		}
		s.weight = w
		s.hasWeight = true

		return nil
	}
}

// Decl is one grammar declaration, applied in order by Extract.
// It mirrors a production-system entry: Abstract declares a non-terminal,
// Concrete declares a variant with its schema.
type Decl func(reg *registry) error

// Abstract declares a non-terminal symbol. Abstract symbols own no fields;
// they stand for a choice among the alternatives that extend them. An
// abstract symbol may itself extend another abstract symbol, forming
// multi-step production chains.
func Abstract(name string, opts ...SymbolOption) Decl {
	return declare(name, true, opts)
}

// Concrete declares a concrete symbol: a terminal when it has no fields,
// otherwise an internal production with an ordered typed schema.
func Concrete(name string, opts ...SymbolOption) Decl {
	return declare(name, false, opts)
}

// declare builds the shared registration closure behind Abstract/Concrete.
func declare(name string, abstract bool, opts []SymbolOption) Decl {
	return func(reg *registry) error {
		if name == "" {
			return fmt.Errorf("%w: symbol with empty name", ErrInvalidGrammar)
		}
		sym := &Symbol{name: name, abstract: abstract}
		for _, opt := range opts {
			if opt == nil {
				return fmt.Errorf("%w: nil option on %q", ErrInvalidGrammar, name)
			}
			if err := opt(sym); err != nil {
				return err
			}
		}
		if abstract && len(sym.fields) > 0 {
			return fmt.Errorf("%w: abstract symbol %q declares fields", ErrInvalidGrammar, name)
		}

		return reg.add(sym)
	}
}
