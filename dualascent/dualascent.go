// SPDX-License-Identifier: MIT
package dualascent

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/pairheap"
)

// Run performs dual ascent on g's arc costs.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.Root
	if root < 0 {
		root = g.Root()
	}
	if root < 0 || root >= g.NNodes() {
		return nil, fmt.Errorf("%w: %d", ErrRootOutOfRange, root)
	}

	a := &ascent{
		g:     g,
		root:  root,
		cr:    append([]float64(nil), g.Costs()...),
		seen:  make([]bool, g.NNodes()),
		stack: make([]int, 0, g.NNodes()),
	}
	res := &Result{RedCost: a.cr}

	active := pairheap.New(g.NTerms())
	for _, k := range g.Terminals() {
		if k == root {
			continue
		}
		if g.Degree(k) == 0 {
			return nil, fmt.Errorf("%w: terminal %d is isolated", ErrDisconnected, k)
		}
		active.Insert(k, 1)
	}

	for !active.Empty() {
		k, _, _ := active.DeleteMin()
		comp := a.component(k)
		if a.seen[root] {
			continue
		}

		delta, nin := a.cheapestEntering(comp)
		if nin == 0 || core.IsGE(delta, core.Faraway) {
			return nil, fmt.Errorf("%w: terminal %d", ErrDisconnected, k)
		}
		a.lower(comp, delta)
		res.LowerBound += delta
		res.Rounds++

		active.Insert(k, float64(nin))
	}

	cfg.Logger.WithFields(logrus.Fields{
		"root":   root,
		"bound":  res.LowerBound,
		"rounds": res.Rounds,
	}).Debug("dualascent: done")

	return res, nil
}

// ascent holds the reduced costs and scratch space shared by all rounds.
type ascent struct {
	g     *core.Graph
	root  int
	cr    []float64
	seen  []bool
	stack []int
}

// component collects the nodes reaching k over zero reduced-cost arcs.
// seen flags exactly the returned nodes until the next call.
func (a *ascent) component(k int) []int {
	for i := range a.seen {
		a.seen[i] = false
	}
	comp := []int{k}
	a.seen[k] = true
	a.stack = append(a.stack[:0], k)

	for len(a.stack) > 0 {
		v := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]
		for e := a.g.InBeg(v); e != core.EdgeEnd; e = a.g.InNext(e) {
			u := a.g.Tail(e)
			if a.seen[u] || !core.IsZero(a.cr[e]) {
				continue
			}
			a.seen[u] = true
			comp = append(comp, u)
			a.stack = append(a.stack, u)
		}
	}

	return comp
}

// cheapestEntering returns the minimum reduced cost over arcs entering
// comp from outside, and how many such arcs there are.
func (a *ascent) cheapestEntering(comp []int) (float64, int) {
	min := core.Faraway
	n := 0
	for _, v := range comp {
		for e := a.g.InBeg(v); e != core.EdgeEnd; e = a.g.InNext(e) {
			if a.seen[a.g.Tail(e)] {
				continue
			}
			n++
			if a.cr[e] < min {
				min = a.cr[e]
			}
		}
	}

	return min, n
}

// lower subtracts delta from every arc entering comp.
func (a *ascent) lower(comp []int, delta float64) {
	for _, v := range comp {
		for e := a.g.InBeg(v); e != core.EdgeEnd; e = a.g.InNext(e) {
			if a.seen[a.g.Tail(e)] {
				continue
			}
			a.cr[e] -= delta
			if core.IsZero(a.cr[e]) {
				a.cr[e] = 0
			}
		}
	}
}
