// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, entering arcs, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	k     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NNodes()
	if start < 0 || start >= n {
		return nil, ErrStartNodeNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for k := 0; k < n; k++ {
		w.res.Depth[k] = -1
		w.res.Parent[k] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue records depth and entering arc, calls OnEnqueue and queues k.
func (w *walker) enqueue(k, d, via int) {
	w.res.Depth[k] = d
	w.res.Parent[k] = via
	w.opts.OnEnqueue(k, d)
	w.queue = append(w.queue, queueItem{k: k, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.opts.OnDequeue(item.k, item.depth)

		w.res.Order = append(w.res.Order, item.k)
		if err := w.opts.OnVisit(item.k, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.k, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, reports every admitted
// arc and enqueues each unseen head.
func (w *walker) enqueueNeighbors(item queueItem) {
	g := w.graph
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for e := g.OutBeg(item.k); e != core.EdgeEnd; e = g.OutNext(e) {
		if !w.opts.FilterEdge(e) {
			continue
		}
		m := g.Head(e)
		if w.res.Depth[m] < 0 {
			w.enqueue(m, nextDepth, e)
		}
		w.opts.OnEdge(e)
	}
}
