// SPDX-License-Identifier: MIT
package prune

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/prim_kruskal"
)

// SteinerTree spans the nodes flagged in connected with a minimum spanning
// tree grown from the root, then removes non-terminal leaves until every
// leaf is a terminal or the root. Nodes of connected that the tree cannot
// reach are left out; an unreachable terminal is ErrDisconnected.
//
// The result is a per-arc selection on g, arcs directed away from the root.
func SteinerTree(g *core.Graph, cost []float64, connected []bool) ([]bool, error) {
	root := g.Root()
	if root < 0 {
		return nil, ErrNoRoot
	}
	if len(cost) != g.NEdges() {
		return nil, ErrCostLength
	}

	marked := nodeSet(g, connected)
	marked[root] = true
	pred, err := spanTree(g, root, cost, marked, func(k int) bool { return g.IsTerm(k) })
	if err != nil {
		return nil, err
	}

	stripLeaves(g, pred, func(k int) bool { return k == root || g.IsTerm(k) })

	return prim_kruskal.Selection(g, pred), nil
}

// nodeSet copies connected, or flags every node when it is nil.
func nodeSet(g *core.Graph, connected []bool) []bool {
	if connected != nil {
		return append([]bool(nil), connected...)
	}
	all := make([]bool, g.NNodes())
	for k := range all {
		all[k] = true
	}

	return all
}

// spanTree runs Prim over marked and checks that every node for which
// must holds was reached.
func spanTree(g *core.Graph, root int, cost []float64, marked []bool, must func(k int) bool) ([]int, error) {
	pred, _, err := prim_kruskal.Prim(g, root, cost, marked)
	if err != nil && !errors.Is(err, prim_kruskal.ErrDisconnected) {
		return nil, err
	}
	for k := 0; k < g.NNodes(); k++ {
		if k != root && pred[k] < 0 && must(k) {
			return nil, fmt.Errorf("%w: node %d", ErrDisconnected, k)
		}
	}

	return pred, nil
}

// stripLeaves removes tree leaves for which keep is false, repeatedly.
// pred entries of removed nodes are reset to -1.
func stripLeaves(g *core.Graph, pred []int, keep func(k int) bool) {
	n := g.NNodes()
	deg := make([]int, n)
	for k, e := range pred {
		if e >= 0 {
			deg[k]++
			deg[g.Tail(e)]++
		}
	}

	stack := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if deg[k] == 1 && !keep(k) {
			stack = append(stack, k)
		}
	}

	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := pred[k]
		if deg[k] != 1 || e < 0 {
			continue
		}
		pred[k] = -1
		deg[k] = 0
		p := g.Tail(e)
		deg[p]--
		if deg[p] == 1 && !keep(p) {
			stack = append(stack, p)
		}
	}
}
