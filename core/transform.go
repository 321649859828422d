// SPDX-License-Identifier: MIT
package core

import "fmt"

// TransformPrizeCollecting rewrites a rooted prize-collecting instance into
// its Steiner arborescence form. Every non-root node k with a positive prize
// becomes a PseudoTerminal and gets an artificial Terminal t_k together
// with the arcs k→t_k (cost 0) and root→t_k (cost prize[k]). Reverse arcs
// are priced Faraway. A solution either buys the prize node and reaches
// t_k for free, or pays the prize on the root arc.
//
// It returns the number of artificial terminals added.
func (g *Graph) TransformPrizeCollecting() (int, error) {
	if g.prize == nil {
		return 0, ErrNoPrizes
	}
	if g.root < 0 {
		return 0, ErrNoRoot
	}
	if !g.kind.IsPcMw() {
		return 0, fmt.Errorf("%w: type %s is not prize-collecting", ErrInvalidGraph, g.kind)
	}

	n := len(g.term)
	added := 0
	for k := 0; k < n; k++ {
		if k == g.root || g.prize[k] <= 0 || g.term[k] != NonTerminal {
			continue
		}
		g.SetTerm(k, PseudoTerminal)
		t := g.AddNode(Terminal)
		if _, err := g.AddEdge(k, t, 0, Faraway); err != nil {
			return added, err
		}
		if _, err := g.AddEdge(g.root, t, g.prize[k], Faraway); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// PseudoTerminalArc returns the arc from pseudo-terminal k to its
// artificial terminal, or -1.
func (g *Graph) PseudoTerminalArc(k int) int {
	for e := g.outbeg[k]; e != EdgeEnd; e = g.oeat[e] {
		h := g.head[e]
		if g.term[h] == Terminal && h != g.root {
			return e
		}
	}

	return -1
}
