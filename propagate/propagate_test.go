package propagate_test

import (
	"io"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/metrics"
	"github.com/katalvlaran/steinercore/propagate"
	"github.com/katalvlaran/steinercore/redcost"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// buildDiamond returns root 0 and terminal 3 joined through 1 (unit
// edges) and through 2 (edges of cost 2).
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(3, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1) // arcs 0,1
	g.MustAddEdge(1, 3, 1, 1) // arcs 2,3
	g.MustAddEdge(0, 2, 2, 2) // arcs 4,5
	g.MustAddEdge(2, 3, 2, 2) // arcs 6,7

	return g
}

// fakeSearch is a node of a branch-and-bound search over the diamond.
// The LP picks 0→1→3; reduced costs are zero on those arcs.
type fakeSearch struct {
	solving, optimal bool
	cutoff, lpobj    float64
	depth            int
	node             int64
	pseudo           int
	lb, ub, glb, gub []float64
	val, rc          []float64
	terms, deleted   []int
}

func newSearch() *fakeSearch {
	return &fakeSearch{
		solving: true,
		optimal: true,
		cutoff:  4,
		lpobj:   2,
		pseudo:  8,
		lb:      make([]float64, 8),
		ub:      []float64{1, 1, 1, 1, 1, 1, 1, 1},
		glb:     make([]float64, 8),
		gub:     []float64{1, 1, 1, 1, 1, 1, 1, 1},
		val:     []float64{1, 0, 1, 0, 0, 0, 0, 0},
		rc:      []float64{0, 1, 0, 1, 2, 2, 3, 1},
	}
}

type searchLP struct{ s *fakeSearch }

func (l searchLP) Bounds(e int) (float64, float64) { return l.s.lb[e], l.s.ub[e] }
func (l searchLP) SolValue(e int) float64          { return l.s.val[e] }
func (l searchLP) RedCost(e int) float64           { return l.s.rc[e] }

func (s *fakeSearch) Solving() bool                       { return s.solving }
func (s *fakeSearch) HasOptimalBasicLP() bool             { return s.optimal }
func (s *fakeSearch) CutoffBound() float64                { return s.cutoff }
func (s *fakeSearch) LPObjective() float64                { return s.lpobj }
func (s *fakeSearch) NPseudoBranchCands() int             { return s.pseudo }
func (s *fakeSearch) Depth() int                          { return s.depth }
func (s *fakeSearch) NodeNumber() int64                   { return s.node }
func (s *fakeSearch) LP() redcost.LP                      { return searchLP{s: s} }
func (s *fakeSearch) GlobalBounds(e int) (float64, float64) { return s.glb[e], s.gub[e] }
func (s *fakeSearch) BranchingDecisions() ([]int, []int)  { return s.terms, s.deleted }

func (s *fakeSearch) FixLocal(e int) error {
	s.ub[e] = 0
	return nil
}

func (s *fakeSearch) FixGlobal(e int) error {
	s.gub[e] = 0
	s.ub[e] = 0
	return nil
}

func newPropagator(t *testing.T, g *core.Graph, opts ...propagate.Option) *propagate.Propagator {
	t.Helper()
	p, err := propagate.New(g, append([]propagate.Option{propagate.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)

	return p
}

// TestExec_RootFixing fixes the expensive side of the diamond, records
// certificates and blocks the doubly fixed pairs.
func TestExec_RootFixing(t *testing.T) {
	g := buildDiamond(t)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	p := newPropagator(t, g, propagate.WithMetrics(m))
	s := newSearch()

	res, err := p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.ReducedDom, res)

	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, s.ub)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, s.gub)
	assert.Equal(t, 4, p.NFixedEdges())
	assert.Zero(t, p.NFails())

	want := []float64{2, 3, 2, 3, 7, 5, 6, 6}
	for e, fb := range want {
		assert.InDelta(t, fb, p.FixingBound(e), 1e-9, "arc %d", e)
	}

	for e := 4; e < 8; e++ {
		assert.Equal(t, core.Blocked, g.Cost(e), "arc %d", e)
	}
	assert.Equal(t, 1.0, g.Cost(0))

	assert.Equal(t, 4.0, testutil.ToFloat64(m.FixedEdgesTotal.WithLabelValues("local")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.FixedEdgesTotal.WithLabelValues("global")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PropagatorRuns.WithLabelValues("reduced_dom")))
}

// TestExec_FixingBoundsMonotone never lowers a certificate and never
// reopens a fixed arc.
func TestExec_FixingBoundsMonotone(t *testing.T) {
	g := buildDiamond(t)
	p := newPropagator(t, g)
	s := newSearch()

	_, err := p.Exec(s)
	require.NoError(t, err)
	before := make([]float64, g.NEdges())
	for e := range before {
		before[e] = p.FixingBound(e)
	}
	ub := append([]float64(nil), s.ub...)

	s.lpobj = 1
	_, err = p.Exec(s)
	require.NoError(t, err)
	for e := range before {
		assert.GreaterOrEqual(t, p.FixingBound(e), before[e], "arc %d", e)
		if ub[e] == 0 {
			assert.Zero(t, s.ub[e], "arc %d reopened", e)
		}
	}
}

// TestExec_BackOff waits longer after every failed call.
func TestExec_BackOff(t *testing.T) {
	p := newPropagator(t, buildDiamond(t))
	s := newSearch()
	s.cutoff = 100

	want := []propagate.Result{
		propagate.DidNotFind,
		propagate.DidNotFind,
		propagate.DidNotRun,
		propagate.DidNotFind,
		propagate.DidNotRun,
		propagate.DidNotRun,
		propagate.DidNotFind,
	}
	for i, w := range want {
		res, err := p.Exec(s)
		require.NoError(t, err)
		assert.Equal(t, w, res, "call %d", i+1)
	}
	assert.EqualValues(t, 4, p.NFails())
}

// TestExec_Gates covers the calls that never start.
func TestExec_Gates(t *testing.T) {
	p := newPropagator(t, buildDiamond(t))

	s := newSearch()
	s.solving = false
	res, err := p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.DidNotRun, res)

	s = newSearch()
	s.cutoff = math.Inf(1)
	res, err = p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.DidNotRun, res)

	s = newSearch()
	s.pseudo = 0
	res, err = p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.DidNotRun, res)

	s = newSearch()
	s.optimal = false
	res, err = p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.DidNotRun, res)
	assert.Zero(t, p.NFixedEdges())
}

// TestExec_BranchingDeletion fixes the edges a branching decision
// removed from the copy.
func TestExec_BranchingDeletion(t *testing.T) {
	g := buildDiamond(t)
	p := newPropagator(t, g)
	s := newSearch()
	s.cutoff = 100
	s.depth = 1
	s.node = 5
	s.deleted = []int{2}

	res, err := p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.ReducedDom, res)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, s.ub)
	assert.Equal(t, 4, p.NFixedEdges())

	// globally free, so the costs stay
	assert.Equal(t, 2.0, g.Cost(4))
	assert.Equal(t, 2, g.Degree(2))
}

// TestExec_Cutoff reports a node whose fixed-at-one arc leads into a
// deleted node.
func TestExec_Cutoff(t *testing.T) {
	g := buildDiamond(t)
	p := newPropagator(t, g)
	s := newSearch()
	s.cutoff = 100
	s.depth = 1
	s.node = 7
	s.lb[4] = 1
	s.deleted = []int{2}

	res, err := p.Exec(s)
	require.NoError(t, err)
	assert.Equal(t, propagate.Cutoff, res)
	assert.Equal(t, core.Terminal, g.Term(3))
	assert.Equal(t, core.NonTerminal, g.Term(2))
}

// TestExec_AggressiveSameNode reruns the reduction pass on a node it
// already visited only when aggressive.
func TestExec_AggressiveSameNode(t *testing.T) {
	for _, aggressive := range []bool{false, true} {
		settings := propagate.DefaultSettings()
		settings.Aggressive = aggressive
		p := newPropagator(t, buildDiamond(t), propagate.WithSettings(settings))
		s := newSearch()
		s.cutoff = 100
		s.depth = 1
		s.node = 3

		// the degree tests drop the dearer side of the diamond
		res, err := p.Exec(s)
		require.NoError(t, err)
		assert.Equal(t, propagate.ReducedDom, res)

		// same node, new decisions that make it infeasible
		s.ub = []float64{1, 1, 1, 1, 1, 1, 1, 1}
		s.lb[4] = 1
		s.deleted = []int{2}
		res, err = p.Exec(s)
		require.NoError(t, err)
		if aggressive {
			assert.Equal(t, propagate.Cutoff, res)
		} else {
			assert.Equal(t, propagate.DidNotFind, res)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := propagate.New(nil)
	assert.ErrorIs(t, err, propagate.ErrNilGraph)

	g := core.New()
	g.AddNodes(2)
	_, err = propagate.New(g)
	assert.ErrorIs(t, err, propagate.ErrNoRoot)

	_, err = propagate.New(buildDiamond(t), propagate.WithSettings(propagate.Settings{MaxNWaitRounds: 0}))
	assert.ErrorIs(t, err, propagate.ErrBadSettings)

	assert.Panics(t, func() { propagate.WithLogger(nil) })
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "cutoff", propagate.Cutoff.String())
	assert.Equal(t, "unknown", propagate.Result(-1).String())
}
