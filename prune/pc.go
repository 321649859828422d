// SPDX-License-Identifier: MIT
package prune

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/prim_kruskal"
)

// PCSteinerTree builds a tree on a transformed prize-collecting graph.
//
// Steps:
//  1. Span connected, minus the artificial terminals, from the root.
//  2. Walk the tree bottom-up: a subtree is worth its prizes minus its
//     edges, and is cut when its entering edge costs at least that much.
//     Real terminals are worth core.Faraway and always stay.
//  3. Reach every artificial terminal through its pseudo-terminal when the
//     pseudo-terminal stayed, through its root arc otherwise.
func PCSteinerTree(g *core.Graph, cost []float64, connected []bool) ([]bool, error) {
	root := g.Root()
	if root < 0 {
		return nil, ErrNoRoot
	}
	if len(cost) != g.NEdges() {
		return nil, ErrCostLength
	}

	n := g.NNodes()
	artificial := make([]bool, n)
	var pseudo []int
	for k := 0; k < n; k++ {
		if !g.IsPseudoTerm(k) {
			continue
		}
		a := g.PseudoTerminalArc(k)
		if a < 0 {
			return nil, fmt.Errorf("%w: pseudo-terminal %d has no artificial terminal", ErrDisconnected, k)
		}
		artificial[g.Head(a)] = true
		pseudo = append(pseudo, k)
	}

	marked := nodeSet(g, connected)
	for k := range marked {
		marked[k] = marked[k] && !artificial[k]
	}
	marked[root] = true

	real := func(k int) bool { return g.IsTerm(k) && !artificial[k] }
	pred, err := spanTree(g, root, cost, marked, real)
	if err != nil {
		return nil, err
	}

	p := &pcPruner{
		g:        g,
		cost:     cost,
		pred:     pred,
		real:     real,
		worth:    make([]float64, n),
		children: make([][]int, n),
	}
	for _, e := range pred {
		if e >= 0 {
			t := g.Tail(e)
			p.children[t] = append(p.children[t], e)
		}
	}
	p.prune(root)

	sel := prim_kruskal.Selection(g, pred)
	for _, k := range pseudo {
		a := g.PseudoTerminalArc(k)
		if k == root || pred[k] >= 0 {
			sel[a] = true
			continue
		}
		ra := g.FindEdge(root, g.Head(a))
		if ra < 0 {
			return nil, fmt.Errorf("%w: artificial terminal %d has no root arc", ErrDisconnected, g.Head(a))
		}
		sel[ra] = true
	}

	return sel, nil
}

// pcPruner holds the tree walked by the strong prune.
type pcPruner struct {
	g        *core.Graph
	cost     []float64
	pred     []int
	real     func(k int) bool
	worth    []float64
	children [][]int
}

// prune computes the net worth of k's subtree and cuts unprofitable
// children.
func (p *pcPruner) prune(k int) {
	if p.real(k) {
		p.worth[k] = core.Faraway
	} else {
		p.worth[k] = p.g.Prize(k)
	}

	for _, e := range p.children[k] {
		c := p.g.Head(e)
		p.prune(c)
		if core.IsGE(p.cost[e], p.worth[c]) {
			p.cut(c)
			continue
		}
		p.worth[k] += p.worth[c] - p.cost[e]
	}
}

// cut detaches the subtree below and including k.
func (p *pcPruner) cut(k int) {
	p.pred[k] = -1
	for _, e := range p.children[k] {
		if p.pred[p.g.Head(e)] == e {
			p.cut(p.g.Head(e))
		}
	}
}
