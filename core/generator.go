package core

import "github.com/velmoren/evotree/rng"

// Expander is the synthesizer's recursive capability handed to
// metahandlers: it produces a fully resolved value of type t within the
// given depth budget, consuming draws from the same random source as the
// surrounding synthesis.
type Expander func(budget int, t TypeRef) (Value, error)

// Generator is the metahandler plugin interface: a pluggable value
// producer for leaf domains outside the plain type hierarchy. A field
// declared as Annotated(base, gen) delegates its value production entirely
// to gen.
//
// Generate receives the random source, the grammar, the recursive
// expansion capability, the remaining depth budget, the annotated base
// type (for annotated lists, the element type), the field name, and a
// context exposing the already-bound sibling fields — enough to express
// cross-field constraints. Implementations must be pure over their inputs
// plus the random source and must return either a complete value or an
// error; partially built values are never acceptable.
type Generator interface {
	Generate(src rng.Source, g *Grammar, expand Expander, budget int, base TypeRef, field string, ctx *Context) (Value, error)
}

// Context exposes the fields of the node under construction that are
// already bound, so a metahandler can constrain its output against sibling
// values. Fields still awaiting deferred expansion report as unbound.
type Context struct {
	owner *Node
	field string
}

// NewContext builds the context handed to a metahandler generating the
// named field of owner.
func NewContext(owner *Node, field string) *Context {
	return &Context{owner: owner, field: field}
}

// FieldName returns the name of the field being generated.
func (c *Context) FieldName() string { return c.field }

// Sibling returns the value bound to the named sibling field. ok is false
// for unknown names and for siblings not yet resolved.
func (c *Context) Sibling(name string) (Value, bool) {
	if c == nil || c.owner == nil {
		return nil, false
	}
	v, ok := c.owner.FieldByName(name)
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Owner returns the node under construction, or nil outside field
// generation. The node may still contain unbound fields.
func (c *Context) Owner() *Node {
	if c == nil {
		return nil
	}

	return c.owner
}
