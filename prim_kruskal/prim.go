// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree over marked nodes from a root using a pairing heap.
package prim_kruskal

import (
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/pairheap"
)

// Prim computes an MST of the subgraph induced by the marked nodes,
// growing from root. The key of a node is the cost of the cheapest arc
// from the tree into it, so with asymmetric costs the tree is priced in
// the root-outward direction.
//
// Steps:
//  1. Validate inputs and resolve the marked set.
//  2. Seed the heap with the root at key 0.
//  3. Pop the cheapest node, settle it, and offer every arc to an
//     unsettled marked neighbour that beats its current key.
//  4. If some marked node was never settled → ErrDisconnected (pred is
//     still returned for the reachable part).
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int, cost []float64, marked []bool) ([]int, float64, error) {
	marked, err := validate(g, root, cost, marked)
	if err != nil {
		return nil, 0, err
	}

	n := g.NNodes()
	pred := make([]int, n)
	key := make([]float64, n)
	done := make([]bool, n)
	for k := 0; k < n; k++ {
		pred[k] = -1
		key[k] = core.Faraway
	}

	pq := pairheap.New(n)
	key[root] = 0
	pq.Insert(root, 0)

	var total float64
	for !pq.Empty() {
		k, d, _ := pq.DeleteMin()
		if done[k] || d > key[k] {
			continue
		}
		done[k] = true
		if pred[k] >= 0 {
			total += cost[pred[k]]
		}

		for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
			m := g.Head(e)
			if done[m] || !marked[m] {
				continue
			}
			if core.IsLT(cost[e], key[m]) {
				key[m] = cost[e]
				pred[m] = e
				pq.Insert(m, cost[e])
			}
		}
	}

	for k := 0; k < n; k++ {
		if marked[k] && !done[k] && g.Degree(k) > 0 {
			return pred, total, ErrDisconnected
		}
	}

	return pred, total, nil
}
