// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus counters for the heuristic and the
// propagator. A nil *Recorder is valid and records nothing, so callers
// never need to check whether metrics were configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "steiner"

// Recorder groups the collectors registered by New.
type Recorder struct {
	HeuristicRuns   *prometheus.CounterVec
	NewGraphEdges   prometheus.Histogram
	PropagatorRuns  *prometheus.CounterVec
	FixedEdgesTotal *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
}

// New registers the collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		HeuristicRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "heuristic_runs_total",
				Help:      "Ascend-and-prune calls by outcome",
			},
			[]string{"result"},
		),
		NewGraphEdges: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "heuristic_new_graph_edges",
				Help:      "Edges of the subgraph handed to the prune step",
				Buckets:   prometheus.ExponentialBuckets(8, 4, 8),
			},
		),
		PropagatorRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagator_runs_total",
				Help:      "Reduced-cost propagator calls by outcome",
			},
			[]string{"result"},
		),
		FixedEdgesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagator_fixed_edges_total",
				Help:      "Edge variables fixed to zero",
			},
			[]string{"scope"},
		),
		RunDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall time of heuristic and propagator calls",
				Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"component"},
		),
	}
}

// HeuristicRun counts one heuristic call with the given outcome.
func (r *Recorder) HeuristicRun(result string) {
	if r == nil {
		return
	}
	r.HeuristicRuns.WithLabelValues(result).Inc()
}

// NewGraph records the edge count of a constructed subgraph.
func (r *Recorder) NewGraph(edges int) {
	if r == nil {
		return
	}
	r.NewGraphEdges.Observe(float64(edges))
}

// PropagatorRun counts one propagator call with the given outcome.
func (r *Recorder) PropagatorRun(result string) {
	if r == nil {
		return
	}
	r.PropagatorRuns.WithLabelValues(result).Inc()
}

// FixedEdges adds n fixings in scope ("local" or "global").
func (r *Recorder) FixedEdges(scope string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.FixedEdgesTotal.WithLabelValues(scope).Add(float64(n))
}

// Since observes the time elapsed from start for component.
func (r *Recorder) Since(component string, start time.Time) {
	if r == nil {
		return
	}
	r.RunDuration.WithLabelValues(component).Observe(time.Since(start).Seconds())
}
