// SPDX-License-Identifier: MIT
package prune

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/reduce"
)

// Run computes a Steiner tree of g without modifying it.
//
// The work happens on a clone with fresh histories: degree reductions
// (unless disabled), then TM. Every original edge behind the selected and
// fixed clone edges flags its endpoints, and the flagged node set is
// turned into the final tree on g. ok is false when the clone proves
// infeasible or the final tree does not connect the terminals; err is
// reserved for broken input.
func Run(g *core.Graph, opts ...Option) (sel []bool, ok bool, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g.Root() < 0 {
		return nil, false, ErrNoRoot
	}
	log := cfg.Logger.WithFields(logrus.Fields{
		"nodes": g.NLiveNodes(),
		"edges": g.NLiveEdges(),
		"terms": g.NTerms(),
	})

	c := g.Clone()
	c.Release()
	c.InitHistory()
	defer c.Release()

	if cfg.Reduce {
		st, err := reduce.Degree(c)
		if errors.Is(err, reduce.ErrInfeasible) {
			log.WithError(err).Debug("prune: reduced instance is infeasible")
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		log.WithFields(logrus.Fields{
			"deleted":    st.Deleted,
			"contracted": st.Contracted,
			"fixed":      st.Fixed,
		}).Debug("prune: degree reductions")
	}

	csel, err := TM(c, c.Costs())
	if errors.Is(err, ErrDisconnected) {
		log.WithError(err).Debug("prune: no tree on reduced instance")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	connected := make([]bool, g.NNodes())
	connected[g.Root()] = true
	lift := func(e int) {
		connected[g.Tail(e)] = true
		connected[g.Head(e)] = true
	}
	c.Arena().Each(c.Fixed(), lift)
	for e, in := range csel {
		if in {
			c.Arena().Each(c.Ancestors(e), lift)
		}
	}

	if hasPseudoTerminals(g) {
		sel, err = PCSteinerTree(g, g.Costs(), connected)
	} else {
		sel, err = SteinerTree(g, g.Costs(), connected)
	}
	if errors.Is(err, ErrDisconnected) {
		log.WithError(err).Debug("prune: lifted node set does not span the terminals")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	ok = g.SolutionValid(sel)
	log.WithFields(logrus.Fields{
		"cost":  g.SolutionCost(sel),
		"valid": ok,
	}).Debug("prune: tree built")

	return sel, ok, nil
}
