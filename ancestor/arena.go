// SPDX-License-Identifier: MIT
package ancestor

// List is a handle to the head node of a chain. Nil is the empty chain.
type List int

// Nil is the empty chain.
const Nil List = -1

type node struct {
	index int
	next  List
	refs  int // incoming links from other nodes plus head handles
}

// Arena owns the nodes of every chain created through it.
type Arena struct {
	nodes []node
	free  []List
	live  int
}

// NewArena returns an arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]node, 0, capacity)}
}

// Live returns the number of allocated nodes not yet released.
func (a *Arena) Live() int { return a.live }

// Reset drops every chain at once. Handles obtained before Reset must not
// be used afterwards.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
	a.live = 0
}

// Insert puts v in front of *l and rebinds *l to the new node.
func (a *Arena) Insert(l *List, v int) {
	// the handle reference moves from the old head to the new node's link
	*l = a.alloc(v, *l)
}

// AppendCopy adds to *dst a copy of every index of src not already in the
// chain *dst held on entry. Indices appended during this call are not
// compared with each other, so a duplicate-free src yields a duplicate-free
// result. Applying the same src twice changes nothing the second time.
func (a *Arena) AppendCopy(dst *List, src List) {
	boundary := *dst
	for s := src; s != Nil; s = a.nodes[s].next {
		v := a.nodes[s].index
		if a.containsFrom(boundary, v) {
			continue
		}
		*dst = a.alloc(v, *dst)
	}
}

// Share returns a second handle to l. Both handles must be freed.
func (a *Arena) Share(l List) List {
	if l != Nil {
		a.nodes[l].refs++
	}

	return l
}

// Free releases the chain behind *l and sets *l to Nil. Nodes still
// reachable from another chain or handle are left alone.
func (a *Arena) Free(l *List) {
	cur := *l
	*l = Nil
	for cur != Nil {
		n := &a.nodes[cur]
		n.refs--
		if n.refs > 0 {
			return
		}
		next := n.next
		a.release(cur)
		cur = next
	}
}

// Contains reports whether v occurs in l.
func (a *Arena) Contains(l List, v int) bool { return a.containsFrom(l, v) }

// Len returns the chain length.
func (a *Arena) Len(l List) int {
	n := 0
	for ; l != Nil; l = a.nodes[l].next {
		n++
	}

	return n
}

// Each calls fn for every index in chain order, most recent first.
func (a *Arena) Each(l List, fn func(index int)) {
	for ; l != Nil; l = a.nodes[l].next {
		fn(a.nodes[l].index)
	}
}

// Values returns the indices of l, most recent first.
func (a *Arena) Values(l List) []int {
	out := make([]int, 0, 4)
	a.Each(l, func(v int) { out = append(out, v) })

	return out
}

func (a *Arena) containsFrom(l List, v int) bool {
	for ; l != Nil; l = a.nodes[l].next {
		if a.nodes[l].index == v {
			return true
		}
	}

	return false
}

func (a *Arena) alloc(v int, next List) List {
	n := node{index: v, next: next, refs: 1}
	a.live++
	if k := len(a.free); k > 0 {
		x := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[x] = n
		return x
	}
	a.nodes = append(a.nodes, n)

	return List(len(a.nodes) - 1)
}

func (a *Arena) release(x List) {
	a.nodes[x] = node{next: Nil}
	a.free = append(a.free, x)
	a.live--
}
