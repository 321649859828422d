// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/pairheap"
)

// FromRoot computes shortest distances from root under cost.
//
// Returns dist (core.Faraway where unreachable) and pred, the arc entering
// each node on its shortest path (-1 at the root and unreachable nodes).
//
// Validation order: nil graph, root range, cost length, negative costs.
func FromRoot(g *core.Graph, root int, cost []float64, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cost); err != nil {
		return nil, nil, err
	}
	if root < 0 || root >= g.NNodes() {
		return nil, nil, fmt.Errorf("%w: %d", ErrRootOutOfRange, root)
	}

	r := newRunner(g, cost, cfg)
	r.seed(root, root)
	r.process()

	return r.dist, r.pred, nil
}

// VoronoiTerminals partitions the nodes by nearest terminal under cost.
//
// Returns one Path per node and base, the nearest terminal of each node
// (-1 where unreachable). Every terminal except Options.ExcludedBase
// seeds the search at distance zero.
func VoronoiTerminals(g *core.Graph, cost []float64, opts ...Option) ([]Path, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cost); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cost, cfg)
	for k := 0; k < g.NNodes(); k++ {
		if !g.IsTerm(k) || k == cfg.ExcludedBase {
			continue
		}
		if cfg.MarkedOnly && !g.Mark(k) {
			continue
		}
		r.seed(k, k)
	}
	r.process()

	vnoi := make([]Path, g.NNodes())
	for k := range vnoi {
		vnoi[k] = Path{Dist: r.dist[k], Edge: r.pred[k]}
	}

	return vnoi, r.base, nil
}

// ReverseCosts returns costrev with costrev[e] = cost[flip(e)], the cost
// vector of the reversed graph.
func ReverseCosts(g *core.Graph, cost []float64) []float64 {
	rev := make([]float64, len(cost))
	for e := range cost {
		rev[e] = cost[core.Flip(e)]
	}

	return rev
}

// PathTo rebuilds the arc path ending at v from a predecessor array, root
// first. It returns nil when v is unreachable and is not itself a source.
func PathTo(g *core.Graph, pred []int, v int) []int {
	var path []int
	for e := pred[v]; e >= 0; e = pred[g.Tail(e)] {
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func validate(g *core.Graph, cost []float64) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(cost) != g.NEdges() {
		return fmt.Errorf("%w: %d costs for %d arcs", ErrCostLength, len(cost), g.NEdges())
	}
	for e, c := range cost {
		if c < 0 && !g.EdgeDeleted(e) {
			return fmt.Errorf("%w: arc %d→%d cost=%g", ErrNegativeCost, g.Tail(e), g.Head(e), c)
		}
	}

	return nil
}

// runner holds the mutable state of one search.
type runner struct {
	g       *core.Graph
	cost    []float64
	options Options
	dist    []float64
	pred    []int
	base    []int
	done    []bool
	pq      *pairheap.Heap
}

func newRunner(g *core.Graph, cost []float64, cfg Options) *runner {
	n := g.NNodes()
	r := &runner{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    make([]float64, n),
		pred:    make([]int, n),
		base:    make([]int, n),
		done:    make([]bool, n),
		pq:      pairheap.New(n),
	}
	for k := 0; k < n; k++ {
		r.dist[k] = core.Faraway
		r.pred[k] = -1
		r.base[k] = -1
	}

	return r
}

// seed makes k a source at distance zero with the given base.
func (r *runner) seed(k, base int) {
	r.dist[k] = 0
	r.base[k] = base
	r.pq.Insert(k, 0)
}

// process pops nodes in distance order and relaxes their out-arcs.
func (r *runner) process() {
	for !r.pq.Empty() {
		k, d, _ := r.pq.DeleteMin()
		if r.done[k] || d > r.dist[k] {
			continue
		}
		r.done[k] = true
		r.relax(k)
	}
}

// relax improves the heads of every usable arc leaving k.
func (r *runner) relax(k int) {
	g := r.g
	for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
		c := r.cost[e]
		if c >= r.options.InfEdgeThreshold {
			continue
		}
		m := g.Head(e)
		if r.done[m] || (r.options.MarkedOnly && !g.Mark(m)) {
			continue
		}
		nd := r.dist[k] + c
		if !core.IsLT(nd, r.dist[m]) {
			continue
		}
		r.dist[m] = nd
		r.pred[m] = e
		r.base[m] = r.base[k]
		r.pq.Insert(m, nd)
	}
}
