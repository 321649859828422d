// Package pairheap implements a two-pass pairing heap keyed by float64
// with int payloads.
//
// The heap is a forest encoded with leftmost-child / next-sibling links
// plus a back link (prev) for O(1) detachment. Nodes live in an arena
// owned by the Heap and are addressed by index; the sentinel -1 plays the
// role of a nil link. Freed slots are recycled by later inserts.
//
// Operations:
//
//   - Insert:    O(1), melds a singleton with the root.
//   - DeleteMin: O(log n) amortized, two-pass sibling combination.
//   - Meld:      O(1) link plus a copy of the second arena.
//   - Elements:  O(n), sibling-then-child traversal of the forest.
//
// Ties are deterministic: when two roots carry equal keys the first
// argument of the internal link wins, so with repeated inserts of the same
// key the older node stays on top.
//
// A Heap is not safe for concurrent use.
package pairheap
