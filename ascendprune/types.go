// SPDX-License-Identifier: MIT
package ascendprune

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/metrics"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("ascendprune: graph is nil")

	// ErrCostLength indicates a reduced-cost vector not sized to the arcs.
	ErrCostLength = errors.New("ascendprune: reduced cost length mismatch")

	// ErrRootOutOfRange indicates an invalid root.
	ErrRootOutOfRange = errors.New("ascendprune: root out of range")
)

// Sink receives solutions as 0/1 vectors over the arcs and reports
// whether it accepted them.
type Sink interface {
	AddSolution(vals []float64) (bool, error)
}

// Result describes one Run.
type Result struct {
	// Selected is the final arc selection on the input graph; nil when
	// Found is false.
	Selected []bool

	// Found reports a valid tree.
	Found bool

	// Cost is the cost of Selected.
	Cost float64

	// Added reports that the Sink accepted the tree.
	Added bool

	// NewNodes and NewEdges give the size of the extracted subgraph.
	NewNodes int
	NewEdges int
}

// Options configures Run.
type Options struct {
	Root        int  // negative selects the graph root
	DualAscent  bool // reduced costs come from dual ascent
	LocalSearch bool // polish the final tree by vertex insertion
	Sink        Sink
	Workspace   *Workspace
	Logger      logrus.FieldLogger
	Metrics     *metrics.Recorder
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns graph root, LP reduced costs, no sink and the
// standard logger.
func DefaultOptions() Options {
	return Options{Root: -1, Logger: logrus.StandardLogger()}
}

// WithRoot sets the root; a negative value selects the graph root.
func WithRoot(r int) Option {
	return func(o *Options) { o.Root = r }
}

// WithDualAscentCosts declares the reduced costs dual-ascent output.
func WithDualAscentCosts() Option {
	return func(o *Options) { o.DualAscent = true }
}

// WithAddSolution hands a found tree to s.
func WithAddSolution(s Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithWorkspace reuses the scratch buffers of w across calls.
func WithWorkspace(w *Workspace) Option {
	return func(o *Options) { o.Workspace = w }
}

// WithLocalSearch runs local.VertexInsertion on the final tree.
func WithLocalSearch() Option {
	return func(o *Options) { o.LocalSearch = true }
}

// WithLogger sets the logger. A nil logger panics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("ascendprune: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records runs on m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = m }
}

// Workspace holds per-node and per-arc scratch buffers. It is owned by
// one call at a time.
type Workspace struct {
	scanned   []bool
	keep      []bool
	nodeChild []int
	newEdges  []int
}

// NewWorkspace returns an empty workspace; buffers grow on first use.
func NewWorkspace() *Workspace { return &Workspace{} }

// prepare sizes and clears the buffers for n nodes.
func (w *Workspace) prepare(n int) {
	if cap(w.scanned) < n {
		w.scanned = make([]bool, n)
		w.keep = make([]bool, n)
		w.nodeChild = make([]int, n)
	}
	w.scanned = w.scanned[:n]
	w.keep = w.keep[:n]
	w.nodeChild = w.nodeChild[:n]
	for k := 0; k < n; k++ {
		w.scanned[k] = false
		w.keep[k] = false
		w.nodeChild[k] = -1
	}
	w.newEdges = w.newEdges[:0]
}
