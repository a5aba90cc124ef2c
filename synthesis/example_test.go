package synthesis_test

import (
	"fmt"

	"github.com/velmoren/evotree/core"
	"github.com/velmoren/evotree/rng"
	"github.com/velmoren/evotree/synthesis"
)

// ExampleIndividual synthesizes a random tree of the starting symbol and
// checks the structural guarantees that hold on every seed.
func ExampleIndividual() {
	g, _ := core.Extract("Expr",
		core.Abstract("Expr"),
		core.Concrete("One", core.Extends("Expr")),
		core.Concrete("Plus", core.Extends("Expr"),
			core.WithField("Left", core.Ref("Expr")),
			core.WithField("Right", core.Ref("Expr")),
		),
	)

	tree, err := synthesis.Individual(rng.New(2024), g, 5)
	if err != nil {
		fmt.Println("synthesis failed:", err)

		return
	}

	fmt.Println("depth within budget:", tree.DistanceToTerm() <= 5)
	fmt.Println("root is Expr production:", tree.Supertype() == "Expr")
	fmt.Println("size positive:", tree.Size() >= 1)

	// Output:
	// depth within budget: true
	// root is Expr production: true
	// size positive: true
}

// ExampleSynthesize shows the tight-budget behavior: with exactly the
// minimal budget, only the terminal production fits.
func ExampleSynthesize() {
	g, _ := core.Extract("Expr",
		core.Abstract("Expr"),
		core.Concrete("One", core.Extends("Expr")),
		core.Concrete("Plus", core.Extends("Expr"),
			core.WithField("Left", core.Ref("Expr")),
			core.WithField("Right", core.Ref("Expr")),
		),
	)

	tree, _ := synthesis.Synthesize(rng.New(7), g, 1, "Expr")
	fmt.Println(tree)

	// Output:
	// One()
}
