// SPDX-License-Identifier: MIT

// Package local improves Steiner trees by local search.
//
// VertexInsertion tries every non-tree Steiner node in turn: the node is
// hung below one tree neighbour, and each further edge to the tree
// replaces the most expensive edge on the cycle it closes, when that one
// is dearer. The insertion stays if the total change is negative and is
// rolled back otherwise. Trees are held in a linkcut.Forest, so a cycle
// maximum is one Evert plus one FindMax.
package local

import (
	"errors"

	"github.com/katalvlaran/steinercore/bfs"
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/linkcut"
	"github.com/katalvlaran/steinercore/prune"
)

// ErrInfeasibleStart indicates a selection that does not connect the
// terminals.
var ErrInfeasibleStart = errors.New("local: starting selection is not a feasible tree")

// swap records one edge exchange of an insertion.
type swap struct {
	v, p, edge int // removed: v hung below p through edge
	w          int // added: w joined to the inserted node
}

// VertexInsertion improves sel in place and reports whether it did.
//
// Costs are taken as symmetric; prize-collecting graphs are returned
// unchanged. The improved selection is rebuilt with prune.SteinerTree on
// the new node set and accepted only when strictly cheaper.
func VertexInsertion(g *core.Graph, sel []bool) (bool, error) {
	if len(sel) != g.NEdges() || !g.SolutionValid(sel) {
		return false, ErrInfeasibleStart
	}
	if g.Type().IsPcMw() {
		return false, nil
	}

	root := g.Root()
	cost := g.Costs()
	tree, err := bfs.BFS(g, root, bfs.WithFilterEdge(func(e int) bool {
		return sel[e] || sel[core.Flip(e)]
	}))
	if err != nil {
		return false, err
	}

	n := g.NNodes()
	f := linkcut.New(n)
	inTree := make([]bool, n)
	for k := 0; k < n; k++ {
		if !tree.Reached(k) {
			continue
		}
		inTree[k] = true
		if e := tree.Parent[k]; e >= 0 {
			f.Link(k, g.Tail(e), core.Flip(e))
		}
	}

	improved := false
	var swaps []swap
	for i := 0; i < n; i++ {
		if inTree[i] || g.Term(i) != core.NonTerminal || g.Degree(i) < 2 {
			continue
		}
		swaps = swaps[:0]
		first := -1
		var diff float64

		for e := g.OutBeg(i); e != core.EdgeEnd; e = g.OutNext(e) {
			w := g.Head(e)
			if !inTree[w] || core.IsGE(cost[e], core.Faraway) {
				continue
			}
			if first < 0 {
				f.Link(i, w, e)
				first = w
				diff = cost[e]
				continue
			}

			f.Evert(i)
			v := f.FindMax(w, cost)
			maxEdge := f.Edge(v)
			if maxEdge < 0 || !core.IsGT(cost[maxEdge], cost[e]) {
				continue
			}
			p := f.Parent(v)
			f.Cut(v)
			f.Evert(w)
			f.Link(w, i, core.Flip(e))
			diff += cost[e] - cost[maxEdge]
			swaps = append(swaps, swap{v: v, p: p, edge: maxEdge, w: w})
		}

		if first < 0 {
			continue
		}
		if core.IsLT(diff, 0) {
			inTree[i] = true
			improved = true
			continue
		}
		for j := len(swaps) - 1; j >= 0; j-- {
			s := swaps[j]
			cutBetween(f, s.w, i)
			f.Evert(s.v)
			f.Link(s.v, s.p, s.edge)
		}
		cutBetween(f, first, i)
	}

	if !improved {
		return false, nil
	}

	better, err := prune.SteinerTree(g, cost, inTree)
	if err != nil {
		return false, err
	}
	if !core.IsLT(g.SolutionCost(better), g.SolutionCost(sel)) {
		return false, nil
	}
	copy(sel, better)

	return true, nil
}

// cutBetween removes the forest edge joining a and b.
func cutBetween(f *linkcut.Forest, a, b int) {
	if f.Parent(a) == b {
		f.Cut(a)
		return
	}
	f.Cut(b)
}
