// SPDX-License-Identifier: MIT
package pairheap

// New returns an empty heap with room for capacity nodes before the arena
// grows.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		nodes: make([]node, 0, capacity),
		root:  none,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap) Len() int { return h.size }

// Empty reports whether the heap holds no elements.
func (h *Heap) Empty() bool { return h.root == none }

// Min returns the minimum element and key without removing it.
// On an empty heap it returns element -1 and ok false.
func (h *Heap) Min() (element int, key float64, ok bool) {
	if h.root == none {
		return -1, 0, false
	}
	n := &h.nodes[h.root]

	return n.element, n.key, true
}

// Insert adds element with the given key.
func (h *Heap) Insert(element int, key float64) {
	h.mustLive()
	x := h.alloc(element, key)
	h.size++
	if h.root == none {
		h.root = x
		return
	}
	h.root = h.link(h.root, x)
}

// DeleteMin removes the minimum and returns it. On an empty heap it
// returns element -1 and ok false.
func (h *Heap) DeleteMin() (element int, key float64, ok bool) {
	h.mustLive()
	if h.root == none {
		return -1, 0, false
	}

	old := h.root
	element, key = h.nodes[old].element, h.nodes[old].key
	first := h.nodes[old].child
	h.release(old)
	h.size--

	if first == none {
		h.root = none
	} else {
		h.nodes[first].prev = none
		h.root = h.combineSiblings(first)
	}

	return element, key, true
}

// Meld moves every element of other into h. Sizes are summed and other is
// left empty; further use of other panics with ErrMelded until Reset or
// Free.
//
// The two heaps own separate arenas, so other's forest is copied node by
// node into h before the roots are linked: Meld costs O(other.Len()).
func (h *Heap) Meld(other *Heap) {
	h.mustLive()
	if other == nil || other == h {
		return
	}
	other.mustLive()

	if other.root != none {
		// Copy other's live forest into this arena, translating links.
		remap := make(map[int]int, other.size)
		stack := []int{other.root}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			on := other.nodes[x]
			remap[x] = h.alloc(on.element, on.key)
			if on.sibling != none {
				stack = append(stack, on.sibling)
			}
			if on.child != none {
				stack = append(stack, on.child)
			}
		}
		translate := func(i int) int {
			if i == none {
				return none
			}
			return remap[i]
		}
		for oldIdx, newIdx := range remap {
			on := other.nodes[oldIdx]
			n := &h.nodes[newIdx]
			n.child = translate(on.child)
			n.sibling = translate(on.sibling)
			n.prev = translate(on.prev)
		}
		r := remap[other.root]
		if h.root == none {
			h.root = r
		} else {
			h.root = h.link(h.root, r)
		}
		h.size += other.size
	}

	other.nodes = nil
	other.free = nil
	other.root = none
	other.size = 0
	other.melded = true
}

// Elements returns every element currently stored, visiting a node, then
// its sibling chain, then its children. The order carries no meaning
// beyond covering the heap. Callers use it to drain the queue into a
// buffer in one pass, for instance to reset per-node state of every
// queued element.
func (h *Heap) Elements() []int {
	out := make([]int, 0, h.size)
	if h.root == none {
		return out
	}
	stack := []int{h.root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &h.nodes[x]
		out = append(out, n.element)
		// child pushed first so the sibling chain is emitted before it
		if n.child != none {
			stack = append(stack, n.child)
		}
		if n.sibling != none {
			stack = append(stack, n.sibling)
		}
	}

	return out
}

// Reset drops every element and keeps the arena capacity. A heap that was
// melded into another becomes usable again.
func (h *Heap) Reset() {
	h.nodes = h.nodes[:0]
	h.free = h.free[:0]
	h.root = none
	h.size = 0
	h.melded = false
}

// Free releases the arena. A melded heap becomes usable again.
func (h *Heap) Free() {
	h.nodes = nil
	h.free = nil
	h.trees = nil
	h.root = none
	h.size = 0
	h.melded = false
}

func (h *Heap) mustLive() {
	if h.melded {
		panic(ErrMelded)
	}
}

func (h *Heap) alloc(element int, key float64) int {
	n := node{key: key, element: element, child: none, sibling: none, prev: none}
	if k := len(h.free); k > 0 {
		x := h.free[k-1]
		h.free = h.free[:k-1]
		h.nodes[x] = n
		return x
	}
	h.nodes = append(h.nodes, n)

	return len(h.nodes) - 1
}

func (h *Heap) release(x int) {
	h.nodes[x] = node{child: none, sibling: none, prev: none}
	h.free = append(h.free, x)
}

// link joins two detached roots. The smaller key wins, a.key <= b.key
// letting a win, and the loser becomes the winner's leftmost child.
func (h *Heap) link(a, b int) int {
	if b == none {
		return a
	}
	if a == none {
		return b
	}
	win, lose := a, b
	if h.nodes[b].key < h.nodes[a].key {
		win, lose = b, a
	}

	w := &h.nodes[win]
	l := &h.nodes[lose]
	l.prev = win
	l.sibling = w.child
	if l.sibling != none {
		h.nodes[l.sibling].prev = lose
	}
	w.child = lose
	w.sibling = none
	w.prev = none

	return win
}

// combineSiblings merges the sibling chain starting at first into one tree:
// pairs left to right, a trailing odd tree folded into the last pair, then
// the pairs folded right to left.
func (h *Heap) combineSiblings(first int) int {
	if h.nodes[first].sibling == none {
		return first
	}

	trees := h.trees[:0]
	for x := first; x != none; {
		next := h.nodes[x].sibling
		h.nodes[x].sibling = none
		h.nodes[x].prev = none
		trees = append(trees, x)
		x = next
	}
	n := len(trees)

	i := 0
	for ; i+1 < n; i += 2 {
		trees[i] = h.link(trees[i], trees[i+1])
	}
	j := i - 2
	if j == n-3 {
		trees[j] = h.link(trees[j], trees[j+2])
	}
	for ; j >= 2; j -= 2 {
		trees[j-2] = h.link(trees[j-2], trees[j])
	}

	h.trees = trees

	return trees[0]
}
