// SPDX-License-Identifier: MIT
package core

import (
	"fmt"

	"github.com/katalvlaran/steinercore/ancestor"
)

// New returns an empty graph without root.
func New(opts ...GraphOption) *Graph {
	g := &Graph{kind: SPG, root: -1, fixed: ancestor.Nil}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode appends a node of class t and returns its index.
func (g *Graph) AddNode(t Term) int {
	k := len(g.term)
	g.term = append(g.term, t)
	g.mark = append(g.mark, true)
	g.grad = append(g.grad, 0)
	g.inpbeg = append(g.inpbeg, EdgeEnd)
	g.outbeg = append(g.outbeg, EdgeEnd)
	if g.prize != nil {
		g.prize = append(g.prize, 0)
	}
	if t == Terminal {
		g.nterms++
	}

	return k
}

// AddNodes appends n non-terminal nodes and returns the first index.
func (g *Graph) AddNodes(n int) int {
	first := len(g.term)
	for i := 0; i < n; i++ {
		g.AddNode(NonTerminal)
	}

	return first
}

// AddEdge adds the edge {u, v} as arc e = u→v priced cost and arc e+1 =
// v→u priced costrev, and returns e. A fresh pair gets a one-element
// history when histories are enabled.
func (g *Graph) AddEdge(u, v int, cost, costrev float64) (int, error) {
	if err := g.checkNode(u); err != nil {
		return -1, err
	}
	if err := g.checkNode(v); err != nil {
		return -1, err
	}
	if u == v {
		return -1, fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}

	e := len(g.tail)
	g.tail = append(g.tail, u, v)
	g.head = append(g.head, v, u)
	g.cost = append(g.cost, cost, costrev)
	g.ieat = append(g.ieat, EdgeEnd, EdgeEnd)
	g.oeat = append(g.oeat, EdgeEnd, EdgeEnd)
	g.linkArc(e)
	g.linkArc(e + 1)

	if g.ancestors != nil {
		g.ancestors = append(g.ancestors, ancestor.Nil)
		g.arena.Insert(&g.ancestors[e/2], e)
	}

	return e, nil
}

// MustAddEdge is AddEdge for fixtures whose input is known to be valid.
func (g *Graph) MustAddEdge(u, v int, cost, costrev float64) int {
	e, err := g.AddEdge(u, v, cost, costrev)
	if err != nil {
		panic(err)
	}

	return e
}

func (g *Graph) linkArc(e int) {
	t, h := g.tail[e], g.head[e]
	g.oeat[e] = g.outbeg[t]
	g.outbeg[t] = e
	g.ieat[e] = g.inpbeg[h]
	g.inpbeg[h] = e
	g.grad[t]++
}

func (g *Graph) checkNode(k int) error {
	if k < 0 || k >= len(g.term) {
		return fmt.Errorf("%w: %d of %d", ErrNodeOutOfRange, k, len(g.term))
	}

	return nil
}

func (g *Graph) checkEdge(e int) error {
	if e < 0 || e >= len(g.tail) {
		return fmt.Errorf("%w: %d of %d", ErrEdgeOutOfRange, e, len(g.tail))
	}
	if g.oeat[e] == EdgeFree {
		return fmt.Errorf("%w: %d", ErrEdgeDeleted, e)
	}

	return nil
}

// Type returns the problem type.
func (g *Graph) Type() ProblemType { return g.kind }

// SetType changes the problem type.
func (g *Graph) SetType(p ProblemType) { g.kind = p }

// NNodes returns the number of node slots, deleted nodes included.
func (g *Graph) NNodes() int { return len(g.term) }

// NEdges returns the number of arc slots, freed slots included.
func (g *Graph) NEdges() int { return len(g.tail) }

// NTerms returns the number of Terminal nodes.
func (g *Graph) NTerms() int { return g.nterms }

// Root returns the root node, -1 when unset.
func (g *Graph) Root() int { return g.root }

// SetRoot makes k the root and a terminal.
func (g *Graph) SetRoot(k int) error {
	if err := g.checkNode(k); err != nil {
		return err
	}
	g.SetTerm(k, Terminal)
	g.root = k

	return nil
}

// Term returns the terminal class of k.
func (g *Graph) Term(k int) Term { return g.term[k] }

// SetTerm changes the terminal class of k.
func (g *Graph) SetTerm(k int, t Term) {
	if g.term[k] == Terminal {
		g.nterms--
	}
	if t == Terminal {
		g.nterms++
	}
	g.term[k] = t
}

// IsTerm reports whether k is a Terminal.
func (g *Graph) IsTerm(k int) bool { return g.term[k] == Terminal }

// IsPseudoTerm reports whether k is a PseudoTerminal.
func (g *Graph) IsPseudoTerm(k int) bool { return g.term[k] == PseudoTerminal }

// Terminals returns every Terminal node in index order.
func (g *Graph) Terminals() []int {
	out := make([]int, 0, g.nterms)
	for k, t := range g.term {
		if t == Terminal {
			out = append(out, k)
		}
	}

	return out
}

// Degree returns the number of live edges at k.
func (g *Graph) Degree(k int) int { return g.grad[k] }

// Degrees exposes the degree array. Callers must not modify it.
func (g *Graph) Degrees() []int { return g.grad }

// Mark returns the scratch mark of k.
func (g *Graph) Mark(k int) bool { return g.mark[k] }

// SetMark sets the scratch mark of k.
func (g *Graph) SetMark(k int, m bool) { g.mark[k] = m }

// Marks exposes the mark array for algorithms that borrow it as scratch.
func (g *Graph) Marks() []bool { return g.mark }

// ResetMarks restores mark[k] = degree[k] > 0 for every node.
func (g *Graph) ResetMarks() {
	for k := range g.mark {
		g.mark[k] = g.grad[k] > 0
	}
}

// Tail returns the tail node of arc e.
func (g *Graph) Tail(e int) int { return g.tail[e] }

// Head returns the head node of arc e.
func (g *Graph) Head(e int) int { return g.head[e] }

// Tails exposes the tail array. Callers must not modify it.
func (g *Graph) Tails() []int { return g.tail }

// Heads exposes the head array. Callers must not modify it.
func (g *Graph) Heads() []int { return g.head }

// Cost returns the cost of arc e.
func (g *Graph) Cost(e int) float64 { return g.cost[e] }

// SetCost changes the cost of arc e.
func (g *Graph) SetCost(e int, c float64) { g.cost[e] = c }

// Costs exposes the cost array, indexed by arc.
func (g *Graph) Costs() []float64 { return g.cost }

// OutBeg returns the first arc leaving k or EdgeEnd.
func (g *Graph) OutBeg(k int) int { return g.outbeg[k] }

// OutNext returns the arc after e in its tail's out-list.
func (g *Graph) OutNext(e int) int { return g.oeat[e] }

// InBeg returns the first arc entering k or EdgeEnd.
func (g *Graph) InBeg(k int) int { return g.inpbeg[k] }

// InNext returns the arc after e in its head's in-list.
func (g *Graph) InNext(e int) int { return g.ieat[e] }

// EdgeDeleted reports whether the slot of e is free.
func (g *Graph) EdgeDeleted(e int) bool { return g.oeat[e] == EdgeFree }

// FindEdge returns the live arc u→v or -1.
func (g *Graph) FindEdge(u, v int) int {
	for e := g.outbeg[u]; e != EdgeEnd; e = g.oeat[e] {
		if g.head[e] == v {
			return e
		}
	}

	return -1
}

// HasPrizes reports whether a prize array is attached.
func (g *Graph) HasPrizes() bool { return g.prize != nil }

// Prize returns the prize of k, zero without prizes.
func (g *Graph) Prize(k int) float64 {
	if g.prize == nil {
		return 0
	}

	return g.prize[k]
}

// SetPrize attaches a prize to k, allocating the prize array on first use.
func (g *Graph) SetPrize(k int, p float64) {
	if g.prize == nil {
		g.prize = make([]float64, len(g.term))
	}
	g.prize[k] = p
}

// Prizes exposes the prize array, nil without prizes.
func (g *Graph) Prizes() []float64 { return g.prize }

// NLiveEdges counts undirected edges whose slots are in use.
func (g *Graph) NLiveEdges() int {
	n := 0
	for e := 0; e < len(g.tail); e += 2 {
		if g.oeat[e] != EdgeFree {
			n++
		}
	}

	return n
}

// NLiveNodes counts nodes with at least one edge, plus the root.
func (g *Graph) NLiveNodes() int {
	n := 0
	for k, d := range g.grad {
		if d > 0 || k == g.root {
			n++
		}
	}

	return n
}
