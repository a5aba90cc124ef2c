package metahandlers_test

import (
	"fmt"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/metahandlers"
	"github.com/velmoren/evotree/rng"
	"github.com/velmoren/evotree/synthesis"
)

// ExampleIntRange annotates a field with a bounded-integer handler and
// synthesizes a tree whose leaf obeys the declared range.
func ExampleIntRange() {
	g, _ := core.Extract("Lit",
		core.Concrete("Lit",
			core.WithField("Value", core.Annotated(core.Int(0, 0), metahandlers.IntRange{Min: 3, Max: 10})),
		),
	)

	tree, err := synthesis.Individual(rng.New(5), g, 1)
	if err != nil {
		fmt.Println("synthesis failed:", err)

		return
	}

	v, _ := tree.FieldByName("Value")
	n := int64(v.(core.IntVal))
	fmt.Println("in range:", 3 <= n && n <= 10)

	// Output:
	// in range: true
}
