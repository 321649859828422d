// SPDX-License-Identifier: MIT
package pairheap

import "errors"

// ErrMelded is returned by operations on a heap that has been melded into
// another one and not yet Reset.
var ErrMelded = errors.New("pairheap: heap was melded into another heap")

// none is the nil link of the arena.
const none = -1

// node is one arena slot.
type node struct {
	key     float64
	element int
	child   int // leftmost child
	sibling int // next sibling to the right
	prev    int // left sibling, or parent when this is the leftmost child
}

// Heap is a min pairing heap. The zero value is not usable; call New.
type Heap struct {
	nodes  []node
	free   []int // recycled slots
	root   int
	size   int
	melded bool

	// scratch for the two-pass combination, reused across DeleteMin calls
	trees []int
}
