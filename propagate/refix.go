// SPDX-License-Identifier: MIT
package propagate

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/reduce"
)

// edgeState tracks an original arc through the reduction pass.
type edgeState int8

const (
	edgeUnset  edgeState = iota // not behind any surviving edge
	edgeKilled                  // fixed to zero in both directions
	edgeSet                     // behind a surviving edge
	edgeFixed                   // fixed to one, or contracted into the solution
)

// reductionFixing applies the current fixings to a copy of the graph,
// reduces the copy and fixes to zero every pair the reductions removed.
// infeasible is true when the copy cannot hold a tree or a pair fixed to
// one was removed.
func (p *Propagator) reductionFixing(fw Framework) (nfixed int, infeasible bool, err error) {
	g := p.g
	lp := fw.LP()
	nedges := g.NEdges()

	c := g.Clone()
	c.Release()
	c.InitHistory()
	defer c.Release()

	remain := make([]edgeState, nedges)
	for e := 0; e < nedges; e += 2 {
		if g.EdgeDeleted(e) {
			remain[e], remain[e+1] = edgeKilled, edgeKilled
			continue
		}
		lb, ub := lp.Bounds(e)
		lbRev, ubRev := lp.Bounds(e + 1)
		if lb > 0.5 || lbRev > 0.5 {
			c.SetTerm(c.Tail(e), core.Terminal)
			c.SetTerm(c.Head(e), core.Terminal)
			c.SetCost(e, 0)
			c.SetCost(e+1, 0)
			remain[e], remain[e+1] = edgeFixed, edgeFixed
		}
		if ub < 0.5 && ubRev < 0.5 {
			if err := c.DeleteEdge(e); err != nil {
				return 0, false, err
			}
			remain[e], remain[e+1] = edgeKilled, edgeKilled
		}
	}

	if fw.Depth() > 0 {
		terms, deleted := fw.BranchingDecisions()
		for _, k := range terms {
			c.SetTerm(k, core.Terminal)
		}
		for _, k := range deleted {
			if err := c.DeleteNode(k); err != nil {
				return 0, false, fmt.Errorf("propagate: branching deletion: %w", err)
			}
		}
	}

	st, err := reduce.Level0(c)
	if err == nil {
		var more reduce.Stats
		more, err = reduce.Degree(c)
		st.Add(more)
	}
	if errors.Is(err, reduce.ErrInfeasible) {
		p.log.WithError(err).Debug("propagate: reduced copy infeasible")
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}

	arena := c.Arena()
	for e := 0; e < c.NEdges(); e += 2 {
		if c.EdgeDeleted(e) {
			continue
		}
		arena.Each(c.Ancestors(e), func(i int) {
			if remain[i] == edgeUnset {
				remain[i], remain[core.Flip(i)] = edgeSet, edgeSet
			}
		})
	}
	arena.Each(c.Fixed(), func(i int) {
		remain[i], remain[core.Flip(i)] = edgeFixed, edgeFixed
	})

	for e := 0; e < nedges; e++ {
		if remain[e] != edgeUnset && remain[e] != edgeKilled {
			continue
		}
		if lb, _ := lp.Bounds(e); lb > 0.5 {
			p.log.WithField("arc", e).Debug("propagate: arc fixed to one was reduced away")
			return 0, true, nil
		}
	}

	for e := 0; e < nedges; e += 2 {
		if remain[e] != edgeUnset {
			continue
		}
		if err := p.fixLocal(fw, lp, e, &nfixed); err != nil {
			return nfixed, false, err
		}
		if err := p.fixLocal(fw, lp, e+1, &nfixed); err != nil {
			return nfixed, false, err
		}
	}

	p.log.WithFields(logrus.Fields{
		"deleted":    st.Deleted,
		"contracted": st.Contracted,
		"fixed":      nfixed,
	}).Debug("propagate: reduction pass")
	p.metrics.FixedEdges("reduction", nfixed)

	return nfixed, false, nil
}
