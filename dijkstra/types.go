// SPDX-License-Identifier: MIT
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/steinercore/core"
)

// Sentinel errors returned by the searches.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrRootOutOfRange indicates a source outside the node range.
	ErrRootOutOfRange = errors.New("dijkstra: root out of range")

	// ErrCostLength indicates a cost vector not sized to the arc count.
	ErrCostLength = errors.New("dijkstra: cost vector length mismatch")

	// ErrNegativeCost indicates a negative arc cost.
	ErrNegativeCost = errors.New("dijkstra: negative arc cost")

	// ErrBadInfThreshold indicates a non-positive impassable threshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Path is the Voronoi record of one node: the distance to its base and
// the arc the search entered it by (-1 at bases and unreachable nodes).
type Path struct {
	Dist float64
	Edge int
}

// Options configures a search.
type Options struct {
	// InfEdgeThreshold: arcs costing at least this much are impassable.
	InfEdgeThreshold float64

	// MarkedOnly restricts the search to nodes whose graph mark is set.
	MarkedOnly bool

	// ExcludedBase is a terminal not used as a Voronoi base; -1 for none.
	ExcludedBase int
}

// Option is a functional option for the searches.
type Option func(*Options)

// DefaultOptions returns the defaults: threshold core.Faraway, every node
// eligible, every terminal a base.
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: core.Faraway,
		MarkedOnly:       false,
		ExcludedBase:     -1,
	}
}

// WithInfEdgeThreshold treats arcs costing ≥ t as impassable. Panics on
// t <= 0.
func WithInfEdgeThreshold(t float64) Option {
	if t <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = t }
}

// WithMarkedOnly skips nodes whose mark is unset.
func WithMarkedOnly() Option {
	return func(o *Options) { o.MarkedOnly = true }
}

// WithExcludedBase keeps terminal k out of the Voronoi bases, typically
// the root.
func WithExcludedBase(k int) Option {
	return func(o *Options) { o.ExcludedBase = k }
}
