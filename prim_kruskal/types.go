// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/steinercore/core"
)

// ErrInvalidGraph indicates a nil graph or a cost vector not sized to the
// arc count.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or cost vector")

// ErrRootNotMarked indicates the root is out of range or outside the
// marked node set.
var ErrRootNotMarked = errors.New("prim_kruskal: root not in marked set")

// ErrDisconnected indicates some marked node is unreachable from the root
// through marked nodes.
var ErrDisconnected = errors.New("prim_kruskal: marked nodes are disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and from which root.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int:    start node; -1 means the graph root.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the root node.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal rooted at the graph root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   -1,
	}
}

// Compute selects and runs the MST algorithm based on the options.
// An unknown method returns ErrInvalidGraph.
func Compute(g *core.Graph, cost []float64, marked []bool, opts ...Option) ([]int, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.Root
	if root < 0 && g != nil {
		root = g.Root()
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g, root, cost, marked)
	case MethodPrim:
		return Prim(g, root, cost, marked)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// Selection turns a predecessor array into a per-arc selection vector.
func Selection(g *core.Graph, pred []int) []bool {
	sel := make([]bool, g.NEdges())
	for _, e := range pred {
		if e >= 0 {
			sel[e] = true
		}
	}

	return sel
}

// validate checks the shared preconditions and resolves the marked set;
// a nil marked slice means every node.
func validate(g *core.Graph, root int, cost []float64, marked []bool) ([]bool, error) {
	if g == nil || len(cost) != g.NEdges() {
		return nil, ErrInvalidGraph
	}
	if marked == nil {
		marked = make([]bool, g.NNodes())
		for k := range marked {
			marked[k] = true
		}
	}
	if len(marked) != g.NNodes() {
		return nil, ErrInvalidGraph
	}
	if root < 0 || root >= g.NNodes() || !marked[root] {
		return nil, ErrRootNotMarked
	}

	return marked, nil
}
