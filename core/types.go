// SPDX-License-Identifier: MIT
package core

import (
	"errors"

	"github.com/katalvlaran/steinercore/ancestor"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NNodes).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, NEdges).
	ErrEdgeOutOfRange = errors.New("core: edge out of range")

	// ErrEdgeDeleted indicates an operation on a freed edge slot.
	ErrEdgeDeleted = errors.New("core: edge deleted")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNoRoot indicates the graph has no root terminal.
	ErrNoRoot = errors.New("core: graph has no root")

	// ErrNoPrizes indicates a prize-collecting operation on a graph without prizes.
	ErrNoPrizes = errors.New("core: graph carries no prizes")

	// ErrInvalidGraph indicates a broken structural invariant found by Valid.
	ErrInvalidGraph = errors.New("core: invalid graph")
)

// List terminators and distance sentinels.
const (
	// EdgeEnd terminates every adjacency list.
	EdgeEnd = -2

	// EdgeFree marks the list links of a deleted edge slot.
	EdgeFree = -1

	// Faraway is the "infinite" distance and the cost of a forbidden arc.
	Faraway = 1e15

	// Blocked is the cost given to both arcs of a pair fixed to zero in both
	// directions once they have been merged.
	Blocked = 1e10
)

// Term is the terminal class of a node.
type Term int

const (
	// NonTerminal is an ordinary (Steiner) node.
	NonTerminal Term = -1
	// Terminal must be connected by every feasible solution.
	Terminal Term = 0
	// PseudoTerminal is a prize node of a transformed prize-collecting graph.
	PseudoTerminal Term = 1
)

// ProblemType names the Steiner variant a graph encodes.
type ProblemType int

const (
	SPG    ProblemType = iota // Steiner tree problem in graphs
	RSMT                      // rectilinear Steiner minimum tree
	OARSMT                    // obstacle-avoiding rectilinear
	GSTP                      // group Steiner tree
	PCSPG                     // prize-collecting
	RPCSPG                    // rooted prize-collecting
	MWCSP                     // maximum-weight connected subgraph
	RMWCSP                    // rooted maximum-weight connected subgraph
	DCSTP                     // degree-constrained
)

var problemNames = [...]string{"SPG", "RSMT", "OARSMT", "GSTP", "PCSPG", "RPCSPG", "MWCSP", "RMWCSP", "DCSTP"}

// String returns the conventional short name.
func (p ProblemType) String() string {
	if p < 0 || int(p) >= len(problemNames) {
		return "unknown"
	}

	return problemNames[p]
}

// IsPcMw reports whether p is a prize-collecting or maximum-weight variant.
func (p ProblemType) IsPcMw() bool {
	switch p {
	case PCSPG, RPCSPG, MWCSP, RMWCSP:
		return true
	}

	return false
}

// IsRooted reports whether p fixes its root in advance among the prize
// variants.
func (p ProblemType) IsRooted() bool { return p == RPCSPG || p == RMWCSP }

// IsSteinerLike reports whether p is solved as a plain Steiner problem.
func (p ProblemType) IsSteinerLike() bool {
	switch p {
	case SPG, RSMT, OARSMT, GSTP:
		return true
	}

	return false
}

// Graph is the edge-pair array graph. Build it with New, AddNode and
// AddEdge.
type Graph struct {
	kind ProblemType
	root int

	// node arrays
	term   []Term
	mark   []bool
	grad   []int
	prize  []float64 // nil unless SetPrize was called
	inpbeg []int
	outbeg []int
	nterms int

	// edge arrays, indexed by arc
	tail []int
	head []int
	cost []float64
	ieat []int
	oeat []int

	// histories, one chain per pair (index e/2); nil before InitHistory
	arena     *ancestor.Arena
	ancestors []ancestor.List
	fixed     ancestor.List
	offset    float64
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithType sets the problem type (default SPG).
func WithType(p ProblemType) GraphOption {
	return func(g *Graph) { g.kind = p }
}

// WithCapacity preallocates room for nodes nodes and edges undirected edges.
func WithCapacity(nodes, edges int) GraphOption {
	if nodes < 0 || edges < 0 {
		panic("core: WithCapacity with negative size")
	}
	return func(g *Graph) {
		g.term = make([]Term, 0, nodes)
		g.mark = make([]bool, 0, nodes)
		g.grad = make([]int, 0, nodes)
		g.inpbeg = make([]int, 0, nodes)
		g.outbeg = make([]int, 0, nodes)
		g.tail = make([]int, 0, 2*edges)
		g.head = make([]int, 0, 2*edges)
		g.cost = make([]float64, 0, 2*edges)
		g.ieat = make([]int, 0, 2*edges)
		g.oeat = make([]int, 0, 2*edges)
	}
}
