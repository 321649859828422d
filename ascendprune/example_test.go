package ascendprune_test

import (
	"fmt"

	"github.com/katalvlaran/steinercore/ascendprune"
	"github.com/katalvlaran/steinercore/core"
)

// ExampleRun extracts the zero reduced-cost arcs of a small instance and
// prunes them into a tree.
func ExampleRun() {
	g := core.New()
	g.AddNodes(4)
	_ = g.SetRoot(0)
	g.SetTerm(2, core.Terminal)
	g.SetTerm(3, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(1, 2, 1, 1)
	g.MustAddEdge(1, 3, 2, 2)
	g.MustAddEdge(0, 3, 4, 4)

	redcost := []float64{0, 1, 0, 1, 0, 2, 2, 4}
	res, err := ascendprune.Run(g, redcost, ascendprune.WithDualAscentCosts())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("found=%v cost=%.0f edges=%d\n", res.Found, res.Cost, res.NewEdges)
	// Output: found=true cost=4 edges=3
}
