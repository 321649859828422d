// Package dijkstra computes shortest paths on a core.Graph under a caller
// supplied arc cost vector.
//
// Two searches are provided:
//
//   - FromRoot: single-source distances and entering arcs from a root.
//   - VoronoiTerminals: multi-source search seeded at every terminal
//     (optionally all but one), giving each node its nearest terminal
//     ("base"), the distance to it and the arc the search arrived by.
//
// Both use a pairing heap with lazy decrease-key: an improved distance is
// re-inserted and stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V) amortized.
//   - Space: O(V + E) for the heap in the worst case.
//
// Conventions:
//
//   - Unreachable nodes keep distance core.Faraway and entering arc -1.
//   - Arcs priced at or above the impassable threshold (default
//     core.Faraway) are never relaxed.
//   - Costs must be non-negative; a negative cost fails fast with
//     ErrNegativeCost before any work is done.
//   - Ties are settled by the heap's deterministic order and strict
//     improvement on relaxation, so runs are reproducible.
package dijkstra
