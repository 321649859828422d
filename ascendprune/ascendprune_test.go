package ascendprune_test

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/ascendprune"
	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/metrics"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// buildPath returns 0-1-2-3 with unit costs, root 0 and terminal 3.
// Reduced costs are zero on the arcs pointing away from the root.
func buildPath(t *testing.T) (*core.Graph, []float64) {
	t.Helper()
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(3, core.Terminal)
	for k := 0; k < 3; k++ {
		g.MustAddEdge(k, k+1, 1, 1)
	}

	return g, []float64{0, 1, 0, 1, 0, 1}
}

// buildScenario returns root 0, a = 1, t1 = 2, t2 = 3 with edges
// 0→1 (1), 1→2 (1), 0→3 (5). Reduced costs are zero on the two cheap
// arcs and positive elsewhere.
func buildScenario(t *testing.T) (*core.Graph, []float64) {
	t.Helper()
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(2, core.Terminal)
	g.SetTerm(3, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1) // arcs 0,1
	g.MustAddEdge(1, 2, 1, 1) // arcs 2,3
	g.MustAddEdge(0, 3, 5, 5) // arcs 4,5

	return g, []float64{0, 1, 0, 1, 5, 5}
}

// buildPrizeGraph returns a transformed rooted prize-collecting graph:
// root 0, node 1 (prize 5) behind cost 2, node 2 (prize 1) behind cost 3,
// artificial terminals 3 and 4.
func buildPrizeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(core.WithType(core.RPCSPG))
	g.AddNodes(3)
	require.NoError(t, g.SetRoot(0))
	g.MustAddEdge(0, 1, 2, 2)
	g.MustAddEdge(0, 2, 3, 3)
	g.SetPrize(1, 5)
	g.SetPrize(2, 1)
	_, err := g.TransformPrizeCollecting()
	require.NoError(t, err)

	return g
}

func assertMarksRestored(t *testing.T, g *core.Graph) {
	t.Helper()
	for k := 0; k < g.NNodes(); k++ {
		assert.Equal(t, g.Degree(k) > 0, g.Mark(k), "mark of %d", k)
	}
}

// recordingSink keeps the last vector and answers accept.
type recordingSink struct {
	accept bool
	vals   []float64
	calls  int
}

func (s *recordingSink) AddSolution(vals []float64) (bool, error) {
	s.calls++
	s.vals = vals

	return s.accept, nil
}

// TestRun_PathRoundTrip reconstructs the optimal path in both modes.
func TestRun_PathRoundTrip(t *testing.T) {
	for _, dual := range []bool{false, true} {
		g, rc := buildPath(t)
		opts := []ascendprune.Option{ascendprune.WithLogger(quietLogger())}
		if dual {
			opts = append(opts, ascendprune.WithDualAscentCosts())
		}

		res, err := ascendprune.Run(g, rc, opts...)
		require.NoError(t, err)
		require.True(t, res.Found, "dual=%v", dual)
		assert.Equal(t, []bool{true, false, true, false, true, false}, res.Selected, "dual=%v", dual)
		assert.InDelta(t, 3.0, res.Cost, 1e-9)
		assert.Equal(t, 4, res.NewNodes)
		assert.Equal(t, 3, res.NewEdges)
		assertMarksRestored(t, g)
	}
}

// TestRun_Scenario checks the exact 0/1 vector handed to the sink.
func TestRun_Scenario(t *testing.T) {
	g, rc := buildScenario(t)
	sink := &recordingSink{accept: true}

	res, err := ascendprune.Run(g, rc,
		ascendprune.WithAddSolution(sink),
		ascendprune.WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.True(t, res.Added)
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, sink.vals)
	assert.InDelta(t, 7.0, res.Cost, 1e-9)
	assertMarksRestored(t, g)
}

// TestRun_ScenarioZeroArcsMissTerminal finds nothing when the zero arcs
// do not reach t2, and still restores the marks.
func TestRun_ScenarioZeroArcsMissTerminal(t *testing.T) {
	g, rc := buildScenario(t)
	sink := &recordingSink{accept: true}

	res, err := ascendprune.Run(g, rc,
		ascendprune.WithDualAscentCosts(),
		ascendprune.WithAddSolution(sink),
		ascendprune.WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Selected)
	assert.Zero(t, sink.calls)
	assert.Equal(t, 3, res.NewNodes)
	assertMarksRestored(t, g)
}

// TestRun_PrizeCollecting keeps the profitable prize node and pays the
// other prize through the root.
func TestRun_PrizeCollecting(t *testing.T) {
	g := buildPrizeGraph(t)
	rc := append([]float64(nil), g.Costs()...)

	res, err := ascendprune.Run(g, rc, ascendprune.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.InDelta(t, 3.0, res.Cost, 1e-9)
	assert.True(t, res.Selected[0])
	assert.True(t, res.Selected[10])
	assertMarksRestored(t, g)
}

// TestRun_Errors covers the rejected inputs.
func TestRun_Errors(t *testing.T) {
	g, rc := buildPath(t)

	_, err := ascendprune.Run(nil, rc)
	assert.ErrorIs(t, err, ascendprune.ErrNilGraph)
	_, err = ascendprune.Run(g, rc[:2])
	assert.ErrorIs(t, err, ascendprune.ErrCostLength)
	_, err = ascendprune.Run(g, rc, ascendprune.WithRoot(9))
	assert.ErrorIs(t, err, ascendprune.ErrRootOutOfRange)
}

// TestRun_WorkspaceAndMetrics reuses one workspace and counts runs.
func TestRun_WorkspaceAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	ws := ascendprune.NewWorkspace()

	for i := 0; i < 2; i++ {
		g, rc := buildScenario(t)
		res, err := ascendprune.Run(g, rc,
			ascendprune.WithWorkspace(ws),
			ascendprune.WithMetrics(m),
			ascendprune.WithLocalSearch(),
			ascendprune.WithLogger(quietLogger()),
		)
		require.NoError(t, err)
		require.True(t, res.Found)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HeuristicRuns.WithLabelValues("found")))
}
