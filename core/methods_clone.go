// SPDX-License-Identifier: MIT
package core

import "github.com/katalvlaran/steinercore/ancestor"

// Clone returns a deep copy of g. Histories are shared structurally with
// the original through the same arena: each chain gains a reference, so
// either graph may later free, extend or contract its own edges without
// affecting the other.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		kind:   g.kind,
		root:   g.root,
		term:   append([]Term(nil), g.term...),
		mark:   append([]bool(nil), g.mark...),
		grad:   append([]int(nil), g.grad...),
		inpbeg: append([]int(nil), g.inpbeg...),
		outbeg: append([]int(nil), g.outbeg...),
		nterms: g.nterms,
		tail:   append([]int(nil), g.tail...),
		head:   append([]int(nil), g.head...),
		cost:   append([]float64(nil), g.cost...),
		ieat:   append([]int(nil), g.ieat...),
		oeat:   append([]int(nil), g.oeat...),
		fixed:  g.fixed,
		offset: g.offset,
	}
	if g.prize != nil {
		c.prize = append([]float64(nil), g.prize...)
	}

	if g.ancestors != nil {
		c.arena = g.arena
		c.ancestors = make([]ancestor.List, len(g.ancestors))
		for i, l := range g.ancestors {
			c.ancestors[i] = g.arena.Share(l)
		}
		c.fixed = g.arena.Share(g.fixed)
	}

	return c
}

// Release frees every history chain held by g. The graph stays usable
// without histories.
func (g *Graph) Release() {
	if g.ancestors == nil {
		return
	}
	for i := range g.ancestors {
		g.arena.Free(&g.ancestors[i])
	}
	g.arena.Free(&g.fixed)
	g.ancestors = nil
}
