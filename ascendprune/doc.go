// SPDX-License-Identifier: MIT

// Package ascendprune implements the ascend-and-prune primal heuristic.
//
// Given reduced costs for the arcs of a core.Graph, Run keeps only the
// part of the graph those costs single out, solves the kept subgraph with
// prune.Run, maps the subgraph tree back to the nodes of the input graph
// and turns that node set into a tree with prune.SteinerTree (or
// prune.PCSteinerTree on prize-collecting graphs).
//
// Two extraction modes exist. With LP reduced costs, a node stays when it
// is a terminal or lies on a root-to-terminal route no longer than the
// longest root-terminal distance; with dual-ascent reduced costs, the
// subgraph is what the root reaches over zero reduced-cost arcs.
//
// Heuristic wraps Run with the call policy of a branch-and-bound
// framework: it reads the LP through redcost.Build and skips calls that
// cannot pay off because the dual bound has not moved enough.
//
// The node marks of the input graph are borrowed during a call and reset
// to "degree > 0" on every return path.
package ascendprune
