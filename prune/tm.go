// SPDX-License-Identifier: MIT
package prune

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/pairheap"
)

// TM grows a tree from the root by attaching, one at a time, the
// terminal closest to the tree built so far (Takahashi-Matsuyama). A
// single search serves all rounds: once a terminal is reached its path
// joins the tree at distance zero and the search resumes from it.
//
// Arcs priced at core.Faraway or more are never used. The grown tree is
// finished by SteinerTree, or by PCSteinerTree on graphs that carry
// pseudo-terminals.
func TM(g *core.Graph, cost []float64, opts ...Option) ([]bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := g.Root()
	if root < 0 {
		return nil, ErrNoRoot
	}
	if len(cost) != g.NEdges() {
		return nil, ErrCostLength
	}

	n := g.NNodes()
	dist := make([]float64, n)
	back := make([]int, n)
	inTree := make([]bool, n)
	for k := 0; k < n; k++ {
		dist[k] = core.Faraway
		back[k] = -1
	}

	pq := pairheap.New(n)
	dist[root] = 0
	inTree[root] = true
	pq.Insert(root, 0)

	for !pq.Empty() {
		k, d, _ := pq.DeleteMin()
		if d > dist[k] {
			continue
		}
		if g.IsTerm(k) && !inTree[k] {
			for v := k; !inTree[v]; v = g.Tail(back[v]) {
				inTree[v] = true
				dist[v] = 0
				pq.Insert(v, 0)
			}
			continue
		}

		for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
			m := g.Head(e)
			if inTree[m] || core.IsGE(cost[e], core.Faraway) {
				continue
			}
			if cfg.MarkedOnly && !g.Mark(m) {
				continue
			}
			if nd := d + cost[e]; core.IsLT(nd, dist[m]) {
				dist[m] = nd
				back[m] = e
				pq.Insert(m, nd)
			}
		}
	}

	for k := 0; k < n; k++ {
		if g.IsTerm(k) && !inTree[k] {
			return nil, fmt.Errorf("%w: terminal %d", ErrDisconnected, k)
		}
	}

	if hasPseudoTerminals(g) {
		return PCSteinerTree(g, cost, inTree)
	}

	return SteinerTree(g, cost, inTree)
}

func hasPseudoTerminals(g *core.Graph) bool {
	for k := 0; k < g.NNodes(); k++ {
		if g.IsPseudoTerm(k) {
			return true
		}
	}

	return false
}
