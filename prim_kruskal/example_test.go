package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/prim_kruskal"
)

// ExamplePrim_pentagon demonstrates Prim's algorithm on a 5-node cycle.
// Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST drops the heaviest edge 0–4 and weighs 11.
func ExamplePrim_pentagon() {
	g := core.New()
	g.AddNodes(5)
	_ = g.SetRoot(0)
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(0, 4, 12, 12)
	g.MustAddEdge(1, 2, 2, 2)
	g.MustAddEdge(2, 3, 3, 3)
	g.MustAddEdge(3, 4, 5, 5)

	pred, total, err := prim_kruskal.Prim(g, 0, g.Costs(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for k, e := range pred {
		if e >= 0 {
			fmt.Printf(" %d-%d", g.Tail(e), k)
		}
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}
