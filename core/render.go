package core

import (
	"strconv"
	"strings"
)

// String renders the subtree rooted at n as a constructor expression,
// e.g. Plus(One(), Plus(One(), One())) — the textual form fitness caches
// and tests key on. Unbound fields render as "_".
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)

	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString(n.sym.Name())
	b.WriteString("(")
	for i, v := range n.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		renderValue(b, v)
	}
	b.WriteString(")")
}

// renderValue writes one bound value.
func renderValue(b *strings.Builder, v Value) {
	switch val := v.(type) {
	case nil:
		b.WriteString("_")
	case IntVal:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case FloatVal:
		b.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 64))
	case BoolVal:
		b.WriteString(strconv.FormatBool(bool(val)))
	case StrVal:
		b.WriteString(strconv.Quote(string(val)))
	case ListVal:
		b.WriteString("[")
		for i, el := range val {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValue(b, el)
		}
		b.WriteString("]")
	case *Node:
		val.render(b)
	}
}
