// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It merges components with a union-find forest and orients the result away from a root.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/steinercore/bfs"
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/unionfind"
)

// Kruskal computes an MST of the subgraph induced by the marked nodes.
//
// Steps:
//  1. Validate inputs and resolve the marked set.
//  2. Collect live edge pairs with both endpoints marked; weigh each by the
//     cheaper of its two arcs.
//  3. Stable-sort by weight and merge components with unionfind
//     (union-by-size).
//  4. Orient the chosen pairs away from root with a BFS restricted to them.
//  5. If some marked node is left outside the root's tree → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph, root int, cost []float64, marked []bool) ([]int, float64, error) {
	marked, err := validate(g, root, cost, marked)
	if err != nil {
		return nil, 0, err
	}

	pairs := make([]int, 0, g.NEdges()/2)
	for e := 0; e < g.NEdges(); e += 2 {
		if g.EdgeDeleted(e) || !marked[g.Tail(e)] || !marked[g.Head(e)] {
			continue
		}
		pairs = append(pairs, e)
	}
	weight := func(e int) float64 {
		if cost[e+1] < cost[e] {
			return cost[e+1]
		}
		return cost[e]
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return weight(pairs[i]) < weight(pairs[j])
	})

	uf := unionfind.New(g.NNodes())
	chosen := make([]bool, g.NEdges()/2)
	for _, e := range pairs {
		u, v := g.Tail(e), g.Head(e)
		if uf.Connected(u, v) {
			continue
		}
		uf.Union(u, v, true)
		chosen[e/2] = true
	}

	res, err := bfs.BFS(g, root, bfs.WithFilterEdge(func(e int) bool { return chosen[e/2] }))
	if err != nil {
		return nil, 0, err
	}

	var total float64
	pred := res.Parent
	for _, e := range pred {
		if e >= 0 {
			total += cost[e]
		}
	}

	for k := 0; k < g.NNodes(); k++ {
		if marked[k] && !res.Reached(k) && g.Degree(k) > 0 {
			return pred, total, ErrDisconnected
		}
	}

	return pred, total, nil
}
