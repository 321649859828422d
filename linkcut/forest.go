// SPDX-License-Identifier: MIT
package linkcut

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

// NoNode is returned by queries that find nothing and marks the parent of
// a root.
const NoNode = -1

// Forest is a link-cut forest over the node universe [0, n).
type Forest struct {
	parent []int
	edge   []int // edge from the node to its parent, -1 for roots
}

// New returns a forest of n single-node trees.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		edge:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		f.Init(v)
	}

	return f
}

// Len returns the size of the node universe.
func (f *Forest) Len() int { return len(f.parent) }

// Init turns v into a root.
func (f *Forest) Init(v int) {
	f.parent[v] = NoNode
	f.edge[v] = NoNode
}

// Parent returns v's parent or NoNode.
func (f *Forest) Parent(v int) int { return f.parent[v] }

// Edge returns the edge joining v to its parent, or -1 at a root.
func (f *Forest) Edge(v int) int { return f.edge[v] }

// IsRoot reports whether v has no parent.
func (f *Forest) IsRoot(v int) bool { return f.parent[v] == NoNode }

// Link hangs the root v below w through edge. Linking a non-root is a
// contract violation and panics.
func (f *Forest) Link(v, w, edge int) {
	if f.parent[v] != NoNode {
		panic(fmt.Sprintf("linkcut: Link(%d, %d): %d is not a root", v, w, v))
	}
	f.parent[v] = w
	f.edge[v] = edge
}

// Cut detaches v from its parent. Cutting a root leaves it unchanged.
func (f *Forest) Cut(v int) {
	f.parent[v] = NoNode
	f.edge[v] = NoNode
}

// Evert makes v the root of its tree. Every edge on the old root path is
// replaced by its flip so that it again points from child to parent.
func (f *Forest) Evert(v int) {
	prev := NoNode
	carried := NoNode
	for q := v; q != NoNode; {
		next := f.parent[q]
		old := f.edge[q]
		if carried >= 0 {
			f.edge[q] = core.Flip(carried)
		} else {
			f.edge[q] = NoNode
		}
		carried = old
		f.parent[q] = prev
		prev = q
		q = next
	}
}

// FindMax walks from v to its root and returns the node directly below the
// most expensive edge on that path. Ties go to the edge nearer the root.
// A root is returned unchanged.
func (f *Forest) FindMax(v int, cost []float64) int {
	best := v
	max := -1.0
	for p := v; f.parent[p] != NoNode; p = f.parent[p] {
		if c := cost[f.edge[p]]; core.IsGE(c, max) {
			max = c
			best = p
		}
	}

	return best
}

// FindMinNonKey walks from v to its root and returns the node of most
// negative weight whose tree degree is exactly 2, considering only nodes
// that have a parent edge. NoNode is returned when no such node has
// negative weight.
//
// It is the key-path query of maximum-weight local search: weights are
// node prizes and degree counts tree edges.
func (f *Forest) FindMinNonKey(v int, nodeweight []float64, tail []int, degree []int) int {
	best := NoNode
	min := 0.0
	for p := v; f.parent[p] != NoNode; p = f.parent[p] {
		t := tail[f.edge[p]]
		if degree[t] == 2 && core.IsLT(nodeweight[t], min) {
			min = nodeweight[t]
			best = p
		}
	}

	return best
}

// RootOf returns the root of v's tree.
func (f *Forest) RootOf(v int) int {
	for f.parent[v] != NoNode {
		v = f.parent[v]
	}

	return v
}

// Depth returns the number of edges between v and its root.
func (f *Forest) Depth(v int) int {
	d := 0
	for ; f.parent[v] != NoNode; v = f.parent[v] {
		d++
	}

	return d
}
