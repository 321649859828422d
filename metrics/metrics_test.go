package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/metrics"
)

// TestRecorder_Counts registers on a fresh registry and checks every
// collector moves.
func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.HeuristicRun("found")
	m.HeuristicRun("found")
	m.HeuristicRun("skipped")
	m.PropagatorRun("reduced")
	m.FixedEdges("local", 3)
	m.FixedEdges("global", 0)
	m.NewGraph(42)
	m.Since("heuristic", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HeuristicRuns.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HeuristicRuns.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PropagatorRuns.WithLabelValues("reduced")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.FixedEdgesTotal.WithLabelValues("local")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FixedEdgesTotal.WithLabelValues("global")))

	n, err := testutil.GatherAndCount(reg, "steiner_heuristic_new_graph_edges", "steiner_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestRecorder_NilSafe calls every method on a nil recorder.
func TestRecorder_NilSafe(t *testing.T) {
	var m *metrics.Recorder
	assert.NotPanics(t, func() {
		m.HeuristicRun("found")
		m.NewGraph(1)
		m.PropagatorRun("cutoff")
		m.FixedEdges("local", 1)
		m.Since("propagator", time.Now())
	})
}

// TestNew_DuplicateRegistration panics like any double registration.
func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
