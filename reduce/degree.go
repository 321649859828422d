// SPDX-License-Identifier: MIT
package reduce

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

// Degree applies the degree tests until a full sweep changes nothing.
//
// Pseudo-terminals of prize-collecting graphs are never touched, and the
// degree-2 replacement is skipped when an existing parallel edge is
// cheaper in one direction but not in the other.
func Degree(g *core.Graph) (Stats, error) {
	var st Stats
	if g.Root() < 0 {
		return st, ErrNoRoot
	}

	for changed := true; changed; {
		changed = false
		for k := 0; k < g.NNodes(); k++ {
			done, err := degreeNode(g, k, &st)
			if err != nil {
				return st, err
			}
			changed = changed || done
		}
	}

	return st, nil
}

// degreeNode runs the test matching k's class and degree.
func degreeNode(g *core.Graph, k int, st *Stats) (bool, error) {
	switch g.Term(k) {
	case core.NonTerminal:
		switch g.Degree(k) {
		case 0:
			return false, nil
		case 1:
			st.Deleted++
			return true, g.DeleteNode(k)
		case 2:
			return bypass(g, k, st)
		}
	case core.Terminal:
		if g.NTerms() < 2 {
			return false, nil
		}
		switch g.Degree(k) {
		case 0:
			return false, fmt.Errorf("%w: terminal %d is isolated", ErrInfeasible, k)
		case 1:
			return true, fixLeaf(g, k, st)
		}
	}

	return false, nil
}

// fixLeaf fixes the only edge of terminal k and merges k into its
// neighbour. The arc priced is the one entering k.
func fixLeaf(g *core.Graph, k int, st *Stats) error {
	e := g.OutBeg(k)
	w := g.Head(e)
	in := core.Flip(e)
	if k == g.Root() {
		in = e
	}
	if core.IsGE(g.Cost(in), core.Faraway) {
		return fmt.Errorf("%w: terminal %d only reachable by a forbidden arc", ErrInfeasible, k)
	}

	st.Fixed++
	st.Offset += g.Cost(in)
	g.FixEdge(in)

	return g.Contract(w, k)
}

// bypass replaces the path a–k–b by a single edge a–b.
func bypass(g *core.Graph, k int, st *Stats) (bool, error) {
	e1 := g.OutBeg(k)
	e2 := g.OutNext(e1)
	a, b := g.Head(e1), g.Head(e2)

	if a == b {
		st.Deleted++
		return true, g.DeleteNode(k)
	}

	// a→k→b and b→k→a
	fwd := g.Cost(core.Flip(e1)) + g.Cost(e2)
	bwd := g.Cost(core.Flip(e2)) + g.Cost(e1)

	if ex := g.FindEdge(a, b); ex >= 0 {
		cf, cb := g.Cost(ex), g.Cost(core.Flip(ex))
		switch {
		case core.IsLE(cf, fwd) && core.IsLE(cb, bwd):
			// the direct edge dominates the path
		case core.IsLE(fwd, cf) && core.IsLE(bwd, cb):
			g.SetCost(ex, fwd)
			g.SetCost(core.Flip(ex), bwd)
			g.ReplaceHistory(ex, e1)
			g.AppendHistory(ex, e2)
		default:
			return false, nil
		}
		st.Deleted++

		return true, g.DeleteNode(k)
	}

	ne, err := g.AddEdge(a, b, fwd, bwd)
	if err != nil {
		return false, err
	}
	g.ReplaceHistory(ne, e1)
	g.AppendHistory(ne, e2)
	st.Contracted++

	return true, g.DeleteNode(k)
}
