// SPDX-License-Identifier: MIT

// Package steinercore bundles the two Steiner plugins of a branch-and-cut
// search behind one closed dispatcher.
//
// The plugins are:
//
//	AscendPrune            primal heuristic: reduced-cost subgraph, then prune
//	ReducedCostPropagator  fixes arcs whose reduced-cost bound exceeds the cutoff
//
// A Core is built from a graph and config.Params and dispatches Exec by
// Plugin value. The building blocks live in their own packages:
//
//	core/          arc-pair graph, histories, solutions, transformations
//	unionfind/     disjoint sets
//	pairheap/      pairing heap over node indices
//	ancestor/      arena of ancestor lists
//	linkcut/       linear link-cut forest
//	dijkstra/      rooted shortest paths and terminal Voronoi regions
//	bfs/           breadth-first reachability
//	prim_kruskal/  spanning trees over marked nodes
//	prune/         MST-and-leaf pruning of a marked subgraph
//	reduce/        degree and level-0 reductions
//	redcost/       reduced costs of an LP view
//	dualascent/    dual ascent producing reduced costs
//	local/         vertex-insertion local search
//	ascendprune/   the heuristic
//	propagate/     the propagator
//	builder/       instance constructors for tests and benchmarks
//	config/        koanf-backed parameter loading
//	metrics/       Prometheus counters
package steinercore
