// SPDX-License-Identifier: MIT
package ascendprune

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/dualascent"
	"github.com/katalvlaran/steinercore/metrics"
	"github.com/katalvlaran/steinercore/redcost"
)

// Status is the outcome of Heuristic.Exec.
type Status int

const (
	DidNotRun Status = iota
	DidNotFind
	FoundSol
)

var statusNames = [...]string{"did_not_run", "did_not_find", "found_sol"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Framework is what Heuristic.Exec needs from the surrounding solver.
type Framework interface {
	Sink

	// Graph returns the problem graph.
	Graph() *core.Graph

	// LP returns the current LP view of the arc variables.
	LP() redcost.LP

	// BestSolution returns the incumbent's identity and objective, ok
	// false when there is none.
	BestSolution() (index int, obj float64, ok bool)

	// DualBound returns the current global dual bound.
	DualBound() float64
}

// Settings are the call-policy parameters of Heuristic.
type Settings struct {
	// MaxFreq runs the heuristic on every call.
	MaxFreq bool

	// MinLPImprove is the fraction of the gap the dual bound must gain
	// before the heuristic runs again on an unchanged incumbent.
	MinLPImprove float64
}

// DefaultSettings returns MaxFreq off and MinLPImprove 0.05.
func DefaultSettings() Settings {
	return Settings{MaxFreq: false, MinLPImprove: 0.05}
}

// Heuristic keeps the state ascend-and-prune carries between calls.
type Heuristic struct {
	settings      Settings
	opts          []Option
	log           logrus.FieldLogger
	metrics       *metrics.Recorder
	ws            *Workspace
	dualAscent    bool
	costs         []float64
	lastDualBound float64
	bestSolIndex  int
	nFailures     int
}

// NewHeuristic returns a heuristic with the given settings. opts are
// passed to every Run; WithLogger and WithMetrics also serve Exec.
func NewHeuristic(s Settings, opts ...Option) *Heuristic {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heuristic{
		settings:     s,
		opts:         opts,
		log:          cfg.Logger,
		metrics:      cfg.Metrics,
		ws:           NewWorkspace(),
		dualAscent:   cfg.DualAscent,
		bestSolIndex: -1,
	}
}

// NFailures returns the number of consecutive runs without a new tree.
func (h *Heuristic) NFailures() int { return h.nFailures }

// Exec runs ascend-and-prune on fw's graph when the call policy allows it.
// The reduced costs come from the LP, or from a dual ascent on the graph
// costs when WithDualAscentCosts was given. A dual ascent that cannot
// reach a terminal counts as a failed run.
//
// It does not run for prize-collecting or degree-constrained problems,
// without an incumbent, or, unless MaxFreq is set, when the incumbent is
// the one seen last time and the dual bound gained less than
// MinLPImprove times the gap since then.
func (h *Heuristic) Exec(fw Framework) (Status, error) {
	g := fw.Graph()
	if !g.Type().IsSteinerLike() {
		return h.skip("problem type"), nil
	}
	index, obj, ok := fw.BestSolution()
	if !ok {
		return h.skip("no incumbent"), nil
	}

	dualBound := fw.DualBound()
	if index == h.bestSolIndex && !h.settings.MaxFreq {
		gap := obj - dualBound
		if core.IsLT(dualBound-h.lastDualBound, gap*h.settings.MinLPImprove) {
			return h.skip("dual bound stalled"), nil
		}
	}
	h.lastDualBound = dualBound

	if h.dualAscent {
		da, err := dualascent.Run(g, dualascent.WithRoot(g.Root()), dualascent.WithLogger(h.log))
		if errors.Is(err, dualascent.ErrDisconnected) {
			h.nFailures++
			h.log.WithError(err).Debug("ascendprune: no dual ascent")
			h.metrics.HeuristicRun("not_found")
			return DidNotFind, nil
		}
		if err != nil {
			return DidNotRun, err
		}
		h.costs = da.RedCost
	} else {
		h.costs = redcost.Build(fw.LP(), g.NEdges(), h.costs)
	}
	opts := append([]Option{WithRoot(g.Root()), WithWorkspace(h.ws), WithAddSolution(fw)}, h.opts...)
	res, err := Run(g, h.costs, opts...)
	if err != nil {
		return DidNotRun, err
	}

	status := DidNotFind
	if res.Added {
		h.nFailures = 0
		status = FoundSol
	} else {
		h.nFailures++
	}
	if index, _, ok := fw.BestSolution(); ok {
		h.bestSolIndex = index
	}

	h.log.WithFields(logrus.Fields{
		"status":   status.String(),
		"failures": h.nFailures,
	}).Debug("ascendprune: exec")

	return status, nil
}

func (h *Heuristic) skip(reason string) Status {
	h.log.WithField("reason", reason).Debug("ascendprune: skipped")
	h.metrics.HeuristicRun("skipped")

	return DidNotRun
}
