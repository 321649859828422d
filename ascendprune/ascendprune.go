// SPDX-License-Identifier: MIT
package ascendprune

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/local"
	"github.com/katalvlaran/steinercore/prune"
	"github.com/katalvlaran/steinercore/reduce"
)

// Run executes ascend-and-prune on g with the given reduced costs.
//
// Steps:
//  1. Extract the subgraph (by paths, or along zero arcs for dual-ascent
//     costs); the graph marks hold the kept nodes meanwhile.
//  2. Build the subgraph as a new graph. Parallel edges keep the first
//     seen; every new arc remembers its original arc.
//  3. Drop subgraph nodes the root cannot reach, then solve the subgraph
//     with prune.Run.
//  4. Flag the endpoints of the original arcs behind the subgraph tree.
//  5. Build the final tree on g over the flagged nodes and validate it.
//  6. Optionally polish it by vertex insertion and hand it to the Sink.
//
// A missing tree is not an error: Result.Found is false. The marks of g
// are reset to "degree > 0" on every return.
func Run(g *core.Graph, redcost []float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.Root
	if root < 0 {
		root = g.Root()
	}
	if root < 0 || root >= g.NNodes() {
		return nil, fmt.Errorf("%w: %d", ErrRootOutOfRange, root)
	}
	if len(redcost) != g.NEdges() {
		return nil, fmt.Errorf("%w: %d for %d arcs", ErrCostLength, len(redcost), g.NEdges())
	}

	start := time.Now()
	defer cfg.Metrics.Since("heuristic", start)
	defer g.ResetMarks()

	ws := cfg.Workspace
	if ws == nil {
		ws = NewWorkspace()
	}
	ws.prepare(g.NNodes())

	pcmw := g.Type().IsPcMw()
	log := cfg.Logger.WithFields(logrus.Fields{
		"type":       g.Type().String(),
		"root":       root,
		"dualascent": cfg.DualAscent,
	})

	x := &extractor{g: g, redcost: redcost, root: root, ws: ws}
	var err error
	switch {
	case !cfg.DualAscent:
		err = x.byPaths()
	case pcmw:
		err = x.zeroArcsPcMw()
	default:
		err = x.zeroArcs()
	}
	if err != nil {
		return nil, err
	}

	ng, edgeAncestor := buildSubgraph(g, root, ws)
	res := &Result{NewNodes: ng.NNodes(), NewEdges: ng.NEdges() / 2}
	cfg.Metrics.NewGraph(res.NewEdges)
	log = log.WithFields(logrus.Fields{"new_nodes": res.NewNodes, "new_edges": res.NewEdges})

	if _, err := reduce.Level0(ng); err != nil {
		if errors.Is(err, reduce.ErrInfeasible) {
			log.WithError(err).Debug("ascendprune: subgraph misses a terminal")
			cfg.Metrics.HeuristicRun("not_found")
			return res, nil
		}
		return nil, err
	}

	nsel, ok, err := prune.Run(ng, prune.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("ascendprune: prune failed on subgraph")
		cfg.Metrics.HeuristicRun("not_found")
		return res, nil
	}

	nodes := ws.keep
	for k := range nodes {
		nodes[k] = false
	}
	for e, in := range nsel {
		if in {
			o := edgeAncestor[e]
			nodes[g.Tail(o)] = true
			nodes[g.Head(o)] = true
		}
	}
	nodes[root] = true

	var sel []bool
	if pcmw {
		sel, err = prune.PCSteinerTree(g, g.Costs(), nodes)
	} else {
		sel, err = prune.SteinerTree(g, g.Costs(), nodes)
	}
	if errors.Is(err, prune.ErrDisconnected) {
		log.WithError(err).Debug("ascendprune: lifted nodes do not span the terminals")
		cfg.Metrics.HeuristicRun("not_found")
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	if cfg.LocalSearch && g.SolutionValid(sel) {
		if _, err := local.VertexInsertion(g, sel); err != nil {
			return nil, err
		}
	}

	if !g.SolutionValid(sel) {
		log.Debug("ascendprune: final tree invalid")
		cfg.Metrics.HeuristicRun("not_found")
		return res, nil
	}
	res.Selected = sel
	res.Found = true
	res.Cost = g.SolutionCost(sel)

	if cfg.Sink != nil {
		vals := make([]float64, len(sel))
		for e, in := range sel {
			if in {
				vals[e] = 1
			}
		}
		if res.Added, err = cfg.Sink.AddSolution(vals); err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{"cost": res.Cost, "added": res.Added}).Debug("ascendprune: tree found")
	cfg.Metrics.HeuristicRun("found")

	return res, nil
}

// buildSubgraph copies the marked nodes and ws.newEdges into a new graph.
// It returns the graph and, per new arc, the original arc it stands for.
func buildSubgraph(g *core.Graph, root int, ws *Workspace) (*core.Graph, []int) {
	kind := g.Type()
	switch kind {
	case core.RSMT, core.OARSMT, core.GSTP:
		kind = core.SPG
	}
	pcmw := kind.IsPcMw()

	nnodes := 0
	for k := 0; k < g.NNodes(); k++ {
		if g.Mark(k) {
			nnodes++
		}
	}
	ng := core.New(core.WithType(kind), core.WithCapacity(nnodes, len(ws.newEdges)))

	for k := 0; k < g.NNodes(); k++ {
		if !g.Mark(k) {
			continue
		}
		nk := ng.AddNode(g.Term(k))
		ws.nodeChild[k] = nk
		if pcmw {
			if g.IsTerm(k) {
				ng.SetPrize(nk, 0)
			} else {
				ng.SetPrize(nk, g.Prize(k))
			}
		}
	}

	nroot := ws.nodeChild[root]
	_ = ng.SetRoot(nroot)
	if g.Type() == core.RPCSPG {
		ng.SetPrize(nroot, core.Faraway)
	}

	edgeAncestor := make([]int, 0, 2*len(ws.newEdges))
	for _, e := range ws.newEdges {
		t, h := ws.nodeChild[g.Tail(e)], ws.nodeChild[g.Head(e)]
		if ng.FindEdge(t, h) >= 0 {
			continue
		}
		ng.MustAddEdge(t, h, g.Cost(e), g.Cost(core.Flip(e)))
		edgeAncestor = append(edgeAncestor, e, core.Flip(e))
	}

	return ng, edgeAncestor
}
