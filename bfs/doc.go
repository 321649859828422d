// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, entering arcs and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     arcs in adjacency-list order.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop count per node, -1 when unreached
//   - Parent: the arc each node was first reached by, -1 at the start
//   - Supports hooks at four stages:
//   - OnEnqueue (when a node is first reached)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - OnEdge    (for every arc that passes the filter, reached head or not)
//   - Arcs can be skipped with WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability from the root decides which parts of a graph a Steiner
//     tree can use; OnEdge lets callers collect the arcs they cross without
//     a second pass (the ascend-and-prune subgraph extraction relies on it).
//
// Determinism
//
//	Adjacency lists are ordered (newest arc first) and the queue is FIFO,
//	so the visit sequence and the OnEdge sequence are fully reproducible.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
