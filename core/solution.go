// SPDX-License-Identifier: MIT
package core

import "github.com/katalvlaran/steinercore/unionfind"

// SolutionValid reports whether the arcs selected in sel connect every
// Terminal with the root. Selecting a deleted slot makes the selection
// invalid; so does a graph without root.
func (g *Graph) SolutionValid(sel []bool) bool {
	if g.root < 0 || len(sel) != len(g.tail) {
		return false
	}

	uf := unionfind.New(len(g.term))
	for e, in := range sel {
		if !in {
			continue
		}
		if g.oeat[e] == EdgeFree {
			return false
		}
		uf.Union(g.tail[e], g.head[e], true)
	}

	for k, t := range g.term {
		if t == Terminal && !uf.Connected(k, g.root) {
			return false
		}
	}

	return true
}

// SolutionCost sums the costs of the selected arcs.
func (g *Graph) SolutionCost(sel []bool) float64 {
	var sum float64
	for e, in := range sel {
		if in {
			sum += g.cost[e]
		}
	}

	return sum
}

// SolutionNodes marks every endpoint of a selected arc, plus the root.
func (g *Graph) SolutionNodes(sel []bool) []bool {
	nodes := make([]bool, len(g.term))
	if g.root >= 0 {
		nodes[g.root] = true
	}
	for e, in := range sel {
		if in {
			nodes[g.tail[e]] = true
			nodes[g.head[e]] = true
		}
	}

	return nodes
}
