// Package prim_kruskal computes minimum spanning trees over the marked
// nodes of a core.Graph: Prim's algorithm grown from a root on a pairing
// heap, and Kruskal's algorithm on a union-find forest.
//
// What & Why
//
//   - The Steiner heuristics repeatedly need "the cheapest tree spanning
//     this node set": after a candidate node set is known (lifted from a
//     reduced graph, or collected by the shortest-path heuristic), an MST
//     over exactly those nodes followed by leaf pruning yields the final
//     Steiner tree.
//
// Algorithms Provided
//
//   - Prim(g, root, cost, marked) ([]int, float64, error)
//
//   - Strategy: grow one tree from root; a pairing heap holds candidate
//     nodes keyed by the cheapest arc connecting them to the tree.
//
//   - Complexity: O(E log V) time, O(V + E) memory.
//
//   - Kruskal(g, root, cost, marked) ([]int, float64, error)
//
//   - Strategy: sort edge pairs by the cheaper of their two arc costs, merge
//     components with unionfind, then orient the chosen edges away from
//     root with a BFS.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Both return pred, the arc entering each spanned node from its parent
// (-1 at the root and outside the marked set), and the total arc cost.
//
// Determinism: Prim breaks key ties by heap order; Kruskal uses a stable
// sort on arc index order.
//
// Errors:
//
//   - ErrInvalidGraph  : nil graph or cost vector of the wrong length.
//   - ErrRootNotMarked : root outside the graph or not in the marked set.
//   - ErrDisconnected  : some marked node cannot be reached from root.
package prim_kruskal
