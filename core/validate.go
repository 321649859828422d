// SPDX-License-Identifier: MIT
package core

import "fmt"

// Valid checks the structural invariants: every listed arc sits in the
// lists of its own endpoints, flips are mirrored, degrees match the lists,
// the terminal count is right and the root is a terminal.
func (g *Graph) Valid() error {
	n := len(g.term)
	deg := make([]int, n)

	for k := 0; k < n; k++ {
		for e := g.outbeg[k]; e != EdgeEnd; e = g.oeat[e] {
			if e < 0 || e >= len(g.tail) {
				return fmt.Errorf("%w: out-list of %d holds %d", ErrInvalidGraph, k, e)
			}
			if g.tail[e] != k {
				return fmt.Errorf("%w: arc %d in out-list of %d has tail %d", ErrInvalidGraph, e, k, g.tail[e])
			}
			f := Flip(e)
			if g.tail[f] != g.head[e] || g.head[f] != k || g.oeat[f] == EdgeFree {
				return fmt.Errorf("%w: arc %d and flip %d disagree", ErrInvalidGraph, e, f)
			}
			deg[k]++
		}
		for e := g.inpbeg[k]; e != EdgeEnd; e = g.ieat[e] {
			if g.head[e] != k {
				return fmt.Errorf("%w: arc %d in in-list of %d has head %d", ErrInvalidGraph, e, k, g.head[e])
			}
		}
	}

	terms := 0
	for k := 0; k < n; k++ {
		if deg[k] != g.grad[k] {
			return fmt.Errorf("%w: node %d degree %d, lists hold %d", ErrInvalidGraph, k, g.grad[k], deg[k])
		}
		if g.term[k] == Terminal {
			terms++
		}
	}
	if terms != g.nterms {
		return fmt.Errorf("%w: %d terminals counted, %d recorded", ErrInvalidGraph, terms, g.nterms)
	}
	if g.root >= 0 && g.term[g.root] != Terminal {
		return fmt.Errorf("%w: root %d is not a terminal", ErrInvalidGraph, g.root)
	}

	return nil
}
