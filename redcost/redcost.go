// SPDX-License-Identifier: MIT

// Package redcost converts the LP state of the edge variables into the
// nonnegative reduced-cost vector consumed by ascend-and-prune.
package redcost

import "github.com/katalvlaran/steinercore/core"

// LP exposes the local bounds, solution value and reduced cost of the
// binary variable of every arc.
type LP interface {
	Bounds(e int) (lb, ub float64)
	SolValue(e int) float64
	RedCost(e int) float64
}

// Build fills dst with one reduced cost per arc and returns it; dst is
// reallocated when shorter than nedges.
//
// A variable fixed at one costs 0 and one fixed at zero costs
// core.Faraway, since the LP reduced cost of a fixed variable cannot be
// trusted. A free variable at zero takes its reduced cost, any other free
// variable costs 0. Negative values are clamped to 0.
func Build(lp LP, nedges int, dst []float64) []float64 {
	if len(dst) < nedges {
		dst = make([]float64, nedges)
	}
	dst = dst[:nedges]

	for e := 0; e < nedges; e++ {
		lb, ub := lp.Bounds(e)
		var rc float64
		switch {
		case lb+0.5 > ub && lb > 0.5:
			rc = 0
		case lb+0.5 > ub:
			rc = core.Faraway
		case core.IsZero(lp.SolValue(e)):
			rc = lp.RedCost(e)
		}
		if core.IsLT(rc, 0) {
			rc = 0
		}
		dst[e] = rc
	}

	return dst
}
