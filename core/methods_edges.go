// SPDX-License-Identifier: MIT
package core

// DeleteEdge removes the pair containing arc e and releases its history.
func (g *Graph) DeleteEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	e0 := e &^ 1
	g.unlinkArc(e0)
	g.unlinkArc(e0 + 1)
	if g.ancestors != nil {
		g.arena.Free(&g.ancestors[e0/2])
	}

	return nil
}

func (g *Graph) unlinkArc(e int) {
	t, h := g.tail[e], g.head[e]

	if g.outbeg[t] == e {
		g.outbeg[t] = g.oeat[e]
	} else {
		p := g.outbeg[t]
		for g.oeat[p] != e {
			p = g.oeat[p]
		}
		g.oeat[p] = g.oeat[e]
	}

	if g.inpbeg[h] == e {
		g.inpbeg[h] = g.ieat[e]
	} else {
		p := g.inpbeg[h]
		for g.ieat[p] != e {
			p = g.ieat[p]
		}
		g.ieat[p] = g.ieat[e]
	}

	g.oeat[e] = EdgeFree
	g.ieat[e] = EdgeFree
	g.grad[t]--
}

// DeleteNode removes every edge at k and clears its mark. The terminal
// class is left to the caller.
func (g *Graph) DeleteNode(k int) error {
	if err := g.checkNode(k); err != nil {
		return err
	}
	for e := g.outbeg[k]; e != EdgeEnd; {
		next := g.oeat[e]
		if err := g.DeleteEdge(e); err != nil {
			return err
		}
		e = next
	}
	g.mark[k] = false

	return nil
}

// Contract merges node s into node t. Every edge s–w becomes t–w; when t–w
// already exists the cheaper of the two edges (by the cost of the arc
// leaving t) survives with its history. The edge t–s itself is deleted,
// so callers that want it in the solution must FixEdge it first. Terminal
// class, prize and root status of s pass to t.
func (g *Graph) Contract(t, s int) error {
	if err := g.checkNode(t); err != nil {
		return err
	}
	if err := g.checkNode(s); err != nil {
		return err
	}
	if t == s {
		return ErrLoopNotAllowed
	}

	for es := g.outbeg[s]; es != EdgeEnd; {
		next := g.oeat[es]
		w := g.head[es]
		if w == t {
			es = next
			continue
		}

		// arc t→w mirrors s→w
		fwd, bwd := g.cost[Flip(es)], g.cost[es]
		et := g.FindEdge(t, w)
		switch {
		case et == -1:
			ne, err := g.AddEdge(t, w, bwd, fwd)
			if err != nil {
				return err
			}
			g.ReplaceHistory(ne, es)
		case IsLT(bwd, g.cost[et]):
			g.cost[et] = bwd
			g.cost[Flip(et)] = fwd
			g.ReplaceHistory(et, es)
		}
		es = next
	}

	if err := g.DeleteNode(s); err != nil {
		return err
	}

	if g.term[s] == Terminal {
		g.SetTerm(t, Terminal)
	}
	if g.term[s] == PseudoTerminal && g.term[t] == NonTerminal {
		g.SetTerm(t, PseudoTerminal)
	}
	g.SetTerm(s, NonTerminal)
	if g.prize != nil {
		g.prize[t] += g.prize[s]
		g.prize[s] = 0
	}
	if g.root == s {
		g.root = t
	}
	g.mark[t] = g.grad[t] > 0 || t == g.root

	return nil
}

// ReplaceHistory makes the chain of dst's pair a copy of src's.
func (g *Graph) ReplaceHistory(dst, src int) {
	if g.ancestors == nil {
		return
	}
	g.arena.Free(&g.ancestors[dst/2])
	g.arena.AppendCopy(&g.ancestors[dst/2], g.ancestors[src/2])
}

// EdgesOf returns the live arcs leaving k in list order.
func (g *Graph) EdgesOf(k int) []int {
	out := make([]int, 0, g.grad[k])
	for e := g.outbeg[k]; e != EdgeEnd; e = g.oeat[e] {
		out = append(out, e)
	}

	return out
}
