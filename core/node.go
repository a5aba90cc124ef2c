package core

// Value is one bound field value of a tree node: a primitive literal, a
// nested node, or a sequence of values. The interface is sealed; the only
// implementations are IntVal, FloatVal, BoolVal, StrVal, ListVal and *Node.
type Value interface {
	isValue()
}

// IntVal is a bound integer literal.
type IntVal int64

// FloatVal is a bound float literal.
type FloatVal float64

// BoolVal is a bound boolean literal.
type BoolVal bool

// StrVal is a bound string literal (enum and metahandler strings).
type StrVal string

// ListVal is a bound sequence of values.
type ListVal []Value

func (IntVal) isValue()   {}
func (FloatVal) isValue() {}
func (BoolVal) isValue()  {}
func (StrVal) isValue()   {}
func (ListVal) isValue()  {}
func (*Node) isValue()    {}

// Node is one concrete-symbol instance in a synthesized tree, with its
// bound field values and derived metadata.
//
// Metadata (Size, Depth, DistanceToTerm) is valid only after Relabel; it is
// recomputed bottom-up after every structural change, never patched in
// place. Nodes are not safe for concurrent mutation; the variation
// operators deep-copy before editing so shared ancestors stay untouched.
type Node struct {
	sym    *Symbol
	fields []Value

	size       int // descendant count including the node itself
	depth      int // root = 1
	distToTerm int // subtree height: leaf = 1
}

// NewNode creates a node of the given concrete symbol with all fields
// unbound (nil). Callers bind fields with SetField and then Relabel.
func NewNode(sym *Symbol, fields ...Value) *Node {
	n := &Node{sym: sym, fields: make([]Value, len(sym.Fields()))}
	copy(n.fields, fields)

	return n
}

// Symbol returns the node's concrete symbol.
func (n *Node) Symbol() *Symbol { return n.sym }

// Supertype returns the node's declared supertype: the symbol's abstract
// parent, or the symbol's own name when it extends nothing. Mutation and
// crossover resynthesize at this type, so a replacement subtree is always
// assignable to the slot it fills.
func (n *Node) Supertype() string {
	if p := n.sym.Parent(); p != "" {
		return p
	}

	return n.sym.Name()
}

// Field returns the value bound to field i (nil while unbound).
func (n *Node) Field(i int) Value { return n.fields[i] }

// FieldByName returns the value bound to the named field.
func (n *Node) FieldByName(name string) (Value, bool) {
	for i, f := range n.sym.Fields() {
		if f.Name == name {
			return n.fields[i], true
		}
	}

	return nil, false
}

// NumFields returns the number of schema fields.
func (n *Node) NumFields() int { return len(n.fields) }

// SetField binds value v to field i. Metadata becomes stale until the next
// Relabel.
func (n *Node) SetField(i int, v Value) { n.fields[i] = v }

// Size returns the descendant count including n itself (leaf = 1).
func (n *Node) Size() int { return n.size }

// Depth returns n's depth within its tree (root = 1).
func (n *Node) Depth() int { return n.depth }

// DistanceToTerm returns the height of the subtree rooted at n (leaf = 1).
func (n *Node) DistanceToTerm() int { return n.distToTerm }

// Clone returns a deep structural copy of the subtree rooted at n,
// including metadata. Primitive values are immutable and copied by value;
// list and node values are copied recursively, so edits to the clone can
// never reach the original.
func (n *Node) Clone() *Node {
	c := &Node{
		sym:        n.sym,
		fields:     make([]Value, len(n.fields)),
		size:       n.size,
		depth:      n.depth,
		distToTerm: n.distToTerm,
	}
	for i, v := range n.fields {
		c.fields[i] = cloneValue(v)
	}

	return c
}

// cloneValue deep-copies a bound value.
func cloneValue(v Value) Value {
	switch val := v.(type) {
	case *Node:
		return val.Clone()
	case ListVal:
		out := make(ListVal, len(val))
		for i, el := range val {
			out[i] = cloneValue(el)
		}

		return out
	default:
		return v
	}
}

// Walk visits the subtree rooted at n in pre-order (node before children,
// children in field order, list elements in sequence order). Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, s := range n.ChildSlots() {
		if !n.ChildAt(s).walk(fn) {
			return false
		}
	}

	return true
}

// ChildSlot identifies the position of one node-valued child inside its
// parent: a field index plus, for children living inside (possibly nested)
// list fields, the path of sequence indices.
type ChildSlot struct {
	field int
	path  []int
}

// ChildSlots enumerates the node-valued children of n in field order,
// descending into list values. The order is the same order Walk uses.
func (n *Node) ChildSlots() []ChildSlot {
	var out []ChildSlot
	for i, v := range n.fields {
		out = collectSlots(out, v, i, nil)
	}

	return out
}

// collectSlots appends the slots of every node reachable inside v.
func collectSlots(out []ChildSlot, v Value, field int, path []int) []ChildSlot {
	switch val := v.(type) {
	case *Node:
		return append(out, ChildSlot{field: field, path: append([]int(nil), path...)})
	case ListVal:
		for i, el := range val {
			out = collectSlots(out, el, field, append(path, i))
		}

		return out
	default:
		return out
	}
}

// ChildAt returns the child node at slot s.
func (n *Node) ChildAt(s ChildSlot) *Node {
	v := n.fields[s.field]
	for _, i := range s.path {
		v = v.(ListVal)[i]
	}

	return v.(*Node)
}

// SetChildAt replaces the child node at slot s. Metadata becomes stale
// until the next Relabel.
func (n *Node) SetChildAt(s ChildSlot, c *Node) {
	if len(s.path) == 0 {
		n.fields[s.field] = c

		return
	}
	list := n.fields[s.field].(ListVal)
	for _, i := range s.path[:len(s.path)-1] {
		list = list[i].(ListVal)
	}
	list[s.path[len(s.path)-1]] = c
}

// Children returns the node-valued children of n in walk order.
func (n *Node) Children() []*Node {
	slots := n.ChildSlots()
	out := make([]*Node, len(slots))
	for i, s := range slots {
		out[i] = n.ChildAt(s)
	}

	return out
}
