// SPDX-License-Identifier: MIT
package steinercore

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/ascendprune"
	"github.com/katalvlaran/steinercore/config"
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/metrics"
	"github.com/katalvlaran/steinercore/propagate"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("steinercore: graph is nil")

	// ErrUnknownPlugin indicates a Plugin value outside the enumeration.
	ErrUnknownPlugin = errors.New("steinercore: unknown plugin")
)

// Plugin selects what Exec runs.
type Plugin int

const (
	AscendPrune Plugin = iota
	ReducedCostPropagator
)

func (p Plugin) String() string {
	switch p {
	case AscendPrune:
		return "ascendprune"
	case ReducedCostPropagator:
		return "propagator"
	default:
		return "unknown"
	}
}

// Outcome is the result of one Exec, shared by both plugins.
type Outcome int

const (
	DidNotRun Outcome = iota
	DidNotFind
	FoundSol
	ReducedDom
	Cutoff
)

var outcomeNames = [...]string{"did_not_run", "did_not_find", "found_sol", "reduced_dom", "cutoff"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}

	return outcomeNames[o]
}

// Framework is the search interface both plugins read from.
type Framework interface {
	ascendprune.Framework
	propagate.Framework
}

// Options configures New.
type Options struct {
	Logger  logrus.FieldLogger // nil builds one from the parameters
	Metrics *metrics.Recorder
}

// Option configures Options.
type Option func(*Options)

// WithLogger overrides the logger built from config.Params.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("steinercore: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithMetrics records both plugins into m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = m }
}

// Core holds one heuristic and one propagator for a graph.
type Core struct {
	g    *core.Graph
	heur *ascendprune.Heuristic
	prop *propagate.Propagator
	log  logrus.FieldLogger
}

// New validates p and builds both plugins over g.
func New(g *core.Graph, p config.Params, opts ...Option) (*Core, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		l, err := p.Logger()
		if err != nil {
			return nil, err
		}
		o.Logger = l
	}

	hopts := append(p.AscendPruneOptions(), ascendprune.WithLogger(o.Logger), ascendprune.WithMetrics(o.Metrics))
	heur := ascendprune.NewHeuristic(p.AscendPruneSettings(), hopts...)

	prop, err := propagate.New(g,
		propagate.WithSettings(p.PropagatorSettings()),
		propagate.WithLogger(o.Logger),
		propagate.WithMetrics(o.Metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("steinercore: propagator: %w", err)
	}

	return &Core{g: g, heur: heur, prop: prop, log: o.Logger}, nil
}

// Heuristic returns the ascend-and-prune state.
func (c *Core) Heuristic() *ascendprune.Heuristic { return c.heur }

// Propagator returns the propagator state.
func (c *Core) Propagator() *propagate.Propagator { return c.prop }

// Exec runs plugin on fw. fw must describe the graph given to New.
func (c *Core) Exec(plugin Plugin, fw Framework) (Outcome, error) {
	switch plugin {
	case AscendPrune:
		st, err := c.heur.Exec(fw)
		if err != nil {
			return DidNotRun, err
		}
		return heuristicOutcome(st), nil
	case ReducedCostPropagator:
		res, err := c.prop.Exec(fw)
		if err != nil {
			return DidNotRun, err
		}
		return propagatorOutcome(res), nil
	default:
		return DidNotRun, fmt.Errorf("%w: %d", ErrUnknownPlugin, int(plugin))
	}
}

func heuristicOutcome(s ascendprune.Status) Outcome {
	switch s {
	case ascendprune.FoundSol:
		return FoundSol
	case ascendprune.DidNotFind:
		return DidNotFind
	default:
		return DidNotRun
	}
}

func propagatorOutcome(r propagate.Result) Outcome {
	switch r {
	case propagate.ReducedDom:
		return ReducedDom
	case propagate.Cutoff:
		return Cutoff
	case propagate.DidNotFind:
		return DidNotFind
	default:
		return DidNotRun
	}
}
