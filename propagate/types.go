// SPDX-License-Identifier: MIT
package propagate

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/metrics"
	"github.com/katalvlaran/steinercore/redcost"
)

var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("propagate: graph is nil")

	// ErrNoRoot is returned by New when the graph has no root.
	ErrNoRoot = errors.New("propagate: graph has no root")

	// ErrBadSettings is returned by New for out-of-range settings.
	ErrBadSettings = errors.New("propagate: invalid settings")
)

// Result is the outcome of Propagator.Exec.
type Result int

const (
	DidNotRun Result = iota
	DidNotFind
	ReducedDom
	Cutoff
)

var resultNames = [...]string{"did_not_run", "did_not_find", "reduced_dom", "cutoff"}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}

	return resultNames[r]
}

// Framework is what Exec needs from the branch-and-bound search. Arc
// variables are indexed like the arcs of the propagator's graph.
type Framework interface {
	// Solving reports whether presolving is over.
	Solving() bool

	// HasOptimalBasicLP reports whether the current node has an optimal,
	// basic LP solution of a valid relaxation.
	HasOptimalBasicLP() bool

	// CutoffBound returns the current cutoff bound, +Inf if none.
	CutoffBound() float64

	// LPObjective returns the objective value of the current LP.
	LPObjective() float64

	// NPseudoBranchCands returns the number of unfixed integer variables.
	NPseudoBranchCands() int

	// Depth returns the depth of the current node, 0 at the root.
	Depth() int

	// NodeNumber identifies the current node.
	NodeNumber() int64

	// LP returns the local bounds, values and reduced costs of the arcs.
	LP() redcost.LP

	// GlobalBounds returns the global bounds of arc e.
	GlobalBounds(e int) (lb, ub float64)

	// FixLocal sets the local upper bound of arc e to 0.
	FixLocal(e int) error

	// FixGlobal sets the global upper bound of arc e to 0.
	FixGlobal(e int) error

	// BranchingDecisions lists the nodes made terminals and the nodes
	// deleted on the path from the root to the current node.
	BranchingDecisions() (terminals, deleted []int)
}

// Settings are the call-policy parameters of a Propagator.
type Settings struct {
	// MaxNWaitRounds is the number of calls to wait after a failure.
	MaxNWaitRounds int

	// Aggressive runs the reduction pass on every call below the root.
	Aggressive bool

	// ReductionWaitRatio is the fraction of arcs that must be fixed since
	// the last reduction pass before the root runs another one.
	ReductionWaitRatio float64
}

// DefaultSettings returns 3 wait rounds, not aggressive, ratio 0.10.
func DefaultSettings() Settings {
	return Settings{MaxNWaitRounds: 3, Aggressive: false, ReductionWaitRatio: 0.10}
}

// Validate rejects settings outside their ranges.
func (s Settings) Validate() error {
	if s.MaxNWaitRounds < 1 {
		return fmt.Errorf("%w: MaxNWaitRounds=%d, want >= 1", ErrBadSettings, s.MaxNWaitRounds)
	}
	if s.ReductionWaitRatio < 0 || s.ReductionWaitRatio > 1 {
		return fmt.Errorf("%w: ReductionWaitRatio=%g, want in [0,1]", ErrBadSettings, s.ReductionWaitRatio)
	}

	return nil
}

// Options configures New.
type Options struct {
	Settings Settings
	Logger   logrus.FieldLogger
	Metrics  *metrics.Recorder
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns DefaultSettings with the standard logger and no
// metrics.
func DefaultOptions() Options {
	return Options{
		Settings: DefaultSettings(),
		Logger:   logrus.StandardLogger(),
	}
}

// WithSettings replaces the call-policy settings.
func WithSettings(s Settings) Option {
	return func(o *Options) { o.Settings = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("propagate: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records calls and fixings in m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = m }
}
