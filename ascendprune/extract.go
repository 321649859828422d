// SPDX-License-Identifier: MIT
package ascendprune

import (
	"github.com/katalvlaran/steinercore/bfs"
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/dijkstra"
)

// extractor collects the subgraph handed to the prune step. On return the
// graph marks flag the kept nodes and ws.newEdges lists the kept arcs in
// discovery order.
type extractor struct {
	g       *core.Graph
	redcost []float64
	root    int
	ws      *Workspace
}

// byPaths keeps terminals and nodes on a root-to-terminal route no longer
// than the longest root-to-terminal distance, then walks the kept part
// from the root. An arc is taken when its head was not scanned yet and
// it is finite in one direction.
func (x *extractor) byPaths() error {
	g, rc, ws := x.g, x.redcost, x.ws
	n := g.NNodes()

	pathDist, _, err := dijkstra.FromRoot(g, x.root, rc)
	if err != nil {
		return err
	}
	maxCost := -core.Faraway
	for k := 0; k < n; k++ {
		if g.IsTerm(k) && k != x.root && core.IsGT(pathDist[k], maxCost) {
			maxCost = pathDist[k]
		}
	}

	// inward Voronoi regions: distances to the nearest terminal, root
	// excluded from the search
	for k := 0; k < n; k++ {
		g.SetMark(k, k != x.root)
	}
	vnoi, _, err := dijkstra.VoronoiTerminals(g, dijkstra.ReverseCosts(g, rc),
		dijkstra.WithMarkedOnly(), dijkstra.WithExcludedBase(x.root))
	if err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		ws.keep[k] = g.IsTerm(k) || core.IsLE(pathDist[k]+vnoi[k].Dist, maxCost)
	}

	return x.walk(
		func(e int) bool { return ws.keep[g.Head(e)] },
		func(e int) {
			if !ws.scanned[g.Head(e)] && (core.IsLT(rc[e], core.Faraway) || core.IsLT(rc[core.Flip(e)], core.Faraway)) {
				ws.newEdges = append(ws.newEdges, e)
			}
		},
	)
}

// zeroArcs walks zero reduced-cost arcs from the root. An arc is taken
// when its head was not scanned yet or its flip is not tight.
func (x *extractor) zeroArcs() error {
	g, rc, ws := x.g, x.redcost, x.ws

	return x.walk(
		func(e int) bool { return core.IsZero(rc[e]) },
		func(e int) {
			if !ws.scanned[g.Head(e)] || !core.IsZero(rc[core.Flip(e)]) {
				ws.newEdges = append(ws.newEdges, e)
			}
		},
	)
}

// zeroArcsPcMw is zeroArcs for transformed prize-collecting graphs.
// Terminals are never entered from the walk: every kept pseudo-terminal
// gets its arc to the artificial terminal, and the root gets its arcs to
// every kept node.
func (x *extractor) zeroArcsPcMw() error {
	g, rc, ws, root := x.g, x.redcost, x.ws, x.root

	err := x.walk(
		func(e int) bool {
			return core.IsZero(rc[e]) && !(g.Tail(e) == root && g.IsTerm(g.Head(e)))
		},
		func(e int) {
			h := g.Head(e)
			if (!ws.scanned[h] || !core.IsZero(rc[core.Flip(e)])) && !g.IsTerm(h) {
				ws.newEdges = append(ws.newEdges, e)
			}
		},
	)
	if err != nil {
		return err
	}

	for k := 0; k < g.NNodes(); k++ {
		if !g.Mark(k) || !g.IsPseudoTerm(k) {
			continue
		}
		e := g.PseudoTerminalArc(k)
		if e < 0 {
			continue
		}
		ws.newEdges = append(ws.newEdges, e)
		g.SetMark(g.Head(e), true)
	}
	for e := g.OutBeg(root); e != core.EdgeEnd; e = g.OutNext(e) {
		if g.Mark(g.Head(e)) {
			ws.newEdges = append(ws.newEdges, e)
		}
	}

	return nil
}

// walk runs a BFS from the root restricted by admit, reporting admitted
// arcs to take after the head was queued. It leaves the reached nodes
// marked and every other node unmarked.
func (x *extractor) walk(admit func(e int) bool, take func(e int)) error {
	g, ws := x.g, x.ws
	res, err := bfs.BFS(g, x.root,
		bfs.WithFilterEdge(admit),
		bfs.WithOnDequeue(func(k, _ int) { ws.scanned[k] = true }),
		bfs.WithOnEdge(take),
	)
	if err != nil {
		return err
	}
	for k := 0; k < g.NNodes(); k++ {
		g.SetMark(k, res.Reached(k))
	}

	return nil
}
