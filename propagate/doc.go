// SPDX-License-Identifier: MIT

// Package propagate implements reduced-cost fixing for Steiner problems.
//
// Each call takes the LP reduced costs of the current node, computes the
// shortest reduced-cost distance from the root to every node and from
// every node to its nearest terminal, and forbids (upper bound 0) every
// arc that cannot lie on a tree cheaper than the cutoff bound.
//
// At the search-tree root the per-arc certificate
//
//	pathdist[tail] + cost[arc] + vnoi[head] + lpobj
//
// is kept as a fixing bound; whenever the cutoff bound later drops below
// it, the arc is fixed globally without recomputation.
//
// When enough arcs have been fixed since the last time (or at every new
// node below the root), the graph is copied, the fixings are applied to
// the copy and the degree reductions run on it; edges that the reductions
// remove are fixed as well. A fixed-at-one arc that the reductions delete
// proves the node infeasible and is reported as Cutoff.
//
// A Propagator is not safe for concurrent use.
package propagate
