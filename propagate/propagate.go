// SPDX-License-Identifier: MIT
package propagate

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/dijkstra"
	"github.com/katalvlaran/steinercore/metrics"
	"github.com/katalvlaran/steinercore/redcost"
)

// Propagator carries the fixing state of one solver run on one graph.
type Propagator struct {
	g        *core.Graph
	settings Settings
	log      logrus.FieldLogger
	metrics  *metrics.Recorder

	fixingBounds   []float64
	cost           []float64
	nFails         int64
	nCalls         int64
	nLastCall      int64
	lastNodeNumber int64
	nFixedEdges    int
	postRedNFixed  int
}

// New returns a propagator for g. All fixing bounds start at -Faraway.
func New(g *core.Graph, opts ...Option) (*Propagator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Root() < 0 {
		return nil, ErrNoRoot
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	fb := make([]float64, g.NEdges())
	for e := range fb {
		fb[e] = -core.Faraway
	}

	return &Propagator{
		g:              g,
		settings:       cfg.Settings,
		log:            cfg.Logger,
		metrics:        cfg.Metrics,
		fixingBounds:   fb,
		lastNodeNumber: -1,
	}, nil
}

// NFixedEdges returns the number of arcs this propagator fixed locally
// over its lifetime.
func (p *Propagator) NFixedEdges() int { return p.nFixedEdges }

// FixingBound returns the root certificate of arc e.
func (p *Propagator) FixingBound(e int) float64 { return p.fixingBounds[e] }

// NFails returns the number of calls without a fixing since the last
// successful one.
func (p *Propagator) NFails() int64 { return p.nFails }

// Exec runs one round of reduced-cost fixing at fw's current node.
//
// It does nothing before the solving stage, without an optimal basic LP,
// with an infinite cutoff bound, when every variable is fixed, or while
// backing off after failures. The graph's costs change only through the
// merge of anti-parallel arcs that are both globally fixed to zero.
func (p *Propagator) Exec(fw Framework) (Result, error) {
	start := time.Now()
	defer p.metrics.Since("propagator", start)

	if !fw.Solving() || !fw.HasOptimalBasicLP() {
		return p.skip("no optimal lp"), nil
	}
	cutoff := fw.CutoffBound()
	if math.IsInf(cutoff, 1) || core.IsGE(cutoff, core.Faraway) {
		return p.skip("infinite cutoff"), nil
	}
	if fw.NPseudoBranchCands() == 0 {
		return p.skip("all variables fixed"), nil
	}

	p.nCalls++
	if p.nFails > 0 && p.nLastCall+int64(p.settings.MaxNWaitRounds) >= p.nCalls &&
		p.nLastCall+p.nFails > p.nCalls {
		return p.skip("waiting"), nil
	}
	p.nLastCall = p.nCalls

	g := p.g
	nedges := g.NEdges()
	lp := fw.LP()
	lpObj := fw.LPObjective()
	minPathCost := cutoff - lpObj
	log := p.log.WithFields(logrus.Fields{
		"depth":  fw.Depth(),
		"cutoff": cutoff,
		"lpobj":  lpObj,
	})

	p.cost = redcost.Build(lp, nedges, p.cost)
	pathDist, vnoi, err := p.distances()
	if err != nil {
		return DidNotRun, err
	}

	nfixed := 0
	skipTerms := g.Type() == core.MWCSP || g.Type() == core.PCSPG
	for k := 0; k < g.NNodes(); k++ {
		if skipTerms && g.IsTerm(k) {
			continue
		}
		if !g.IsTerm(k) && core.IsGT(pathDist[k]+vnoi[k].Dist, minPathCost) {
			for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
				if err := p.fixLocal(fw, lp, e, &nfixed); err != nil {
					return DidNotRun, err
				}
				if err := p.fixLocal(fw, lp, core.Flip(e), &nfixed); err != nil {
					return DidNotRun, err
				}
			}
			continue
		}
		for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
			if core.IsGT(pathDist[k]+p.cost[e]+vnoi[g.Head(e)].Dist, minPathCost) {
				if err := p.fixLocal(fw, lp, e, &nfixed); err != nil {
					return DidNotRun, err
				}
			}
		}
	}
	p.metrics.FixedEdges("local", nfixed)

	if fw.Depth() == 0 {
		p.updateFixingBounds(pathDist, vnoi, lpObj, skipTerms)
	}
	nglobal, err := p.globalFixing(fw, cutoff)
	if err != nil {
		return DidNotRun, err
	}
	nfixed += nglobal

	if p.callReduce(fw) {
		nred, infeasible, err := p.reductionFixing(fw)
		if err != nil {
			return DidNotRun, err
		}
		p.postRedNFixed = 0
		if infeasible {
			log.Info("propagate: reductions prove the node infeasible")
			p.metrics.PropagatorRun(Cutoff.String())
			return Cutoff, nil
		}
		nfixed += nred
	}

	res := DidNotFind
	if nfixed > 0 {
		p.nFails = 0
		res = ReducedDom
		p.blockFixedPairs(fw)
	} else {
		p.nFails++
	}

	log.WithFields(logrus.Fields{
		"fixed":  nfixed,
		"global": nglobal,
		"result": res.String(),
	}).Debug("propagate: exec")
	p.metrics.PropagatorRun(res.String())

	return res, nil
}

func (p *Propagator) skip(reason string) Result {
	p.log.WithField("reason", reason).Debug("propagate: skipped")
	p.metrics.PropagatorRun(DidNotRun.String())

	return DidNotRun
}

// distances returns the reduced-cost distance from the root to every
// node, and the Voronoi records of the reverse search from the
// terminals. Paths into the root are cut off.
func (p *Propagator) distances() ([]float64, []dijkstra.Path, error) {
	g := p.g
	g.ResetMarks()

	pathDist, _, err := dijkstra.FromRoot(g, g.Root(), p.cost)
	if err != nil {
		return nil, nil, fmt.Errorf("propagate: root distances: %w", err)
	}

	rev := dijkstra.ReverseCosts(g, p.cost)
	for e := g.OutBeg(g.Root()); e != core.EdgeEnd; e = g.OutNext(e) {
		rev[e] = core.Faraway
	}
	vnoi, _, err := dijkstra.VoronoiTerminals(g, rev)
	if err != nil {
		return nil, nil, fmt.Errorf("propagate: voronoi: %w", err)
	}

	return pathDist, vnoi, nil
}

// fixLocal forbids arc e at the current node unless its bounds are
// already fixed.
func (p *Propagator) fixLocal(fw Framework, lp redcost.LP, e int, nfixed *int) error {
	lb, ub := lp.Bounds(e)
	if lb >= 0.5 || ub <= 0.5 {
		return nil
	}
	if err := fw.FixLocal(e); err != nil {
		return err
	}
	*nfixed++
	p.nFixedEdges++
	p.postRedNFixed++

	return nil
}

// updateFixingBounds raises each arc's certificate to this round's value.
func (p *Propagator) updateFixingBounds(pathDist []float64, vnoi []dijkstra.Path, lpObj float64, skipTerms bool) {
	g := p.g
	for k := 0; k < g.NNodes(); k++ {
		if skipTerms && g.IsTerm(k) {
			continue
		}
		for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
			fb := pathDist[k] + p.cost[e] + vnoi[g.Head(e)].Dist + lpObj
			if fb > p.fixingBounds[e] {
				p.fixingBounds[e] = fb
			}
		}
	}
}

// globalFixing forbids, for the rest of the run, every arc whose
// certificate exceeds cutoff.
func (p *Propagator) globalFixing(fw Framework, cutoff float64) (int, error) {
	n := 0
	for e, fb := range p.fixingBounds {
		if !core.IsLT(cutoff, fb) {
			continue
		}
		lb, ub := fw.GlobalBounds(e)
		if lb >= 0.5 || ub <= 0.5 {
			continue
		}
		if err := fw.FixGlobal(e); err != nil {
			return n, err
		}
		n++
	}
	p.metrics.FixedEdges("global", n)

	return n, nil
}

// callReduce decides whether the reduction pass runs this call. Only
// plain and rectilinear Steiner problems qualify.
func (p *Propagator) callReduce(fw Framework) bool {
	switch p.g.Type() {
	case core.SPG, core.RSMT:
	default:
		return false
	}
	if fw.Depth() > 0 {
		nn := fw.NodeNumber()
		if nn != p.lastNodeNumber || p.settings.Aggressive {
			p.lastNodeNumber = nn
			return true
		}
		return false
	}
	ratio := float64(p.postRedNFixed) / float64(p.g.NEdges())

	return core.IsGT(ratio, p.settings.ReductionWaitRatio)
}

// blockFixedPairs prices anti-parallel arcs that are both globally fixed
// to zero and equally priced at core.Blocked.
func (p *Propagator) blockFixedPairs(fw Framework) {
	g := p.g
	switch g.Type() {
	case core.SPG, core.RSMT, core.RPCSPG, core.PCSPG, core.DCSTP:
	default:
		return
	}
	for e := 0; e < g.NEdges(); e += 2 {
		if g.EdgeDeleted(e) {
			continue
		}
		_, ub := fw.GlobalBounds(e)
		_, ubRev := fw.GlobalBounds(e + 1)
		if ub >= 0.5 || ubRev >= 0.5 || g.Cost(e) >= core.Blocked {
			continue
		}
		if g.Cost(e) == g.Cost(e+1) {
			g.SetCost(e, core.Blocked)
			g.SetCost(e+1, core.Blocked)
		}
	}
}
