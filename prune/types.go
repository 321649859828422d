// SPDX-License-Identifier: MIT
package prune

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	// ErrNoRoot indicates a graph without root.
	ErrNoRoot = errors.New("prune: graph has no root")

	// ErrCostLength indicates a cost vector not sized to the arc count.
	ErrCostLength = errors.New("prune: cost length mismatch")

	// ErrDisconnected indicates a terminal the tree cannot reach.
	ErrDisconnected = errors.New("prune: terminal not connected")
)

// Options configures TM and Run.
type Options struct {
	// Logger receives per-run debug output.
	Logger logrus.FieldLogger

	// MarkedOnly restricts TM to nodes whose mark is set.
	MarkedOnly bool

	// Reduce runs degree reductions on the clone before TM (Run only).
	Reduce bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the standard logger, all nodes and reductions on.
func DefaultOptions() Options {
	return Options{
		Logger: logrus.StandardLogger(),
		Reduce: true,
	}
}

// WithLogger sets the logger. A nil logger panics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("prune: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMarkedOnly restricts TM to marked nodes.
func WithMarkedOnly() Option {
	return func(o *Options) { o.MarkedOnly = true }
}

// WithoutReductions skips the degree reductions of Run.
func WithoutReductions() Option {
	return func(o *Options) { o.Reduce = false }
}
