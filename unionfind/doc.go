// Package unionfind provides a disjoint-set forest over the integer
// universe [0, n) with two-pass path compression and optional
// union-by-size.
//
// It backs every routine that needs connectivity over a fixed node
// universe: Kruskal-style MST construction and the feasibility check of a
// Steiner edge selection.
//
// Complexity:
//
//   - New:     O(n) time and space.
//   - Find:    amortized O(α(n)) with compression and union-by-size,
//     O(log n) amortized with compression alone.
//   - Union:   two Find calls plus O(1).
//
// Indices outside [0, n) are a caller contract violation and panic with
// the runtime's index-out-of-range error; nothing is checked explicitly.
package unionfind
