// SPDX-License-Identifier: MIT
package dualascent

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("dualascent: graph is nil")

	// ErrRootOutOfRange indicates a missing or invalid root.
	ErrRootOutOfRange = errors.New("dualascent: root out of range")

	// ErrDisconnected indicates a terminal no finite arc path reaches.
	ErrDisconnected = errors.New("dualascent: terminal unreachable from root")
)

// Result is the outcome of a dual ascent run.
type Result struct {
	// LowerBound is the dual objective reached.
	LowerBound float64

	// RedCost holds one nonnegative reduced cost per arc.
	RedCost []float64

	// Rounds counts the component increases performed.
	Rounds int
}

// Options configures Run.
type Options struct {
	Root   int // -1 selects the graph root
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns graph root and the standard logger.
func DefaultOptions() Options {
	return Options{Root: -1, Logger: logrus.StandardLogger()}
}

// WithRoot selects the root the ascent grows towards.
func WithRoot(r int) Option {
	return func(o *Options) { o.Root = r }
}

// WithLogger sets the logger. A nil logger panics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dualascent: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
