// SPDX-License-Identifier: MIT
package core

import "github.com/katalvlaran/steinercore/ancestor"

// InitHistory gives every live edge pair a chain holding its own even arc
// index. Edges added later get one automatically.
func (g *Graph) InitHistory() {
	if g.arena == nil {
		g.arena = ancestor.NewArena(len(g.tail) / 2)
	}
	g.ancestors = make([]ancestor.List, len(g.tail)/2)
	for e := 0; e < len(g.tail); e += 2 {
		g.ancestors[e/2] = ancestor.Nil
		if g.oeat[e] != EdgeFree {
			g.arena.Insert(&g.ancestors[e/2], e)
		}
	}
	g.fixed = ancestor.Nil
	g.offset = 0
}

// HasHistory reports whether InitHistory was called.
func (g *Graph) HasHistory() bool { return g.ancestors != nil }

// Arena returns the arena holding the histories, nil before InitHistory.
func (g *Graph) Arena() *ancestor.Arena { return g.arena }

// Ancestors returns the history chain of e's pair.
func (g *Graph) Ancestors(e int) ancestor.List {
	if g.ancestors == nil {
		return ancestor.Nil
	}

	return g.ancestors[e/2]
}

// AppendHistory merges the chain of src's pair into dst's pair.
func (g *Graph) AppendHistory(dst, src int) {
	if g.ancestors == nil {
		return
	}
	g.arena.AppendCopy(&g.ancestors[dst/2], g.ancestors[src/2])
}

// FixEdge records e as part of every solution: its history joins the
// fixed chain and its cost joins the offset. The edge itself is left in
// place.
func (g *Graph) FixEdge(e int) {
	g.offset += g.cost[e]
	if g.ancestors == nil {
		return
	}
	g.arena.AppendCopy(&g.fixed, g.ancestors[e/2])
}

// Fixed returns the chain of original edges fixed into the solution.
func (g *Graph) Fixed() ancestor.List { return g.fixed }

// Offset returns the cost of the fixed edges.
func (g *Graph) Offset() float64 { return g.offset }
