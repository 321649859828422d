// SPDX-License-Identifier: MIT
package unionfind

// UnionFind is a disjoint-set forest. The zero value is an empty universe;
// use New to allocate one.
type UnionFind struct {
	parent []int // parent[x] == x marks a root
	size   []int // size[r] is the component size, valid for roots only
	count  int   // number of components
}

// New returns a UnionFind over n singleton components.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Find returns the root of x's component. The first pass walks to the root,
// the second rewires every visited element directly to it.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union joins the components of p and q. With compress set the smaller
// tree hangs under the larger one; otherwise q's root always goes under
// p's root. Joining two already connected elements is a no-op.
func (uf *UnionFind) Union(p, q int, compress bool) {
	rp := uf.Find(p)
	rq := uf.Find(q)
	if rp == rq {
		return
	}

	if compress && uf.size[rp] < uf.size[rq] {
		rp, rq = rq, rp
	}
	uf.parent[rq] = rp
	uf.size[rp] += uf.size[rq]
	uf.count--
}

// Connected reports whether p and q share a component.
func (uf *UnionFind) Connected(p, q int) bool { return uf.Find(p) == uf.Find(q) }

// Count returns the current number of components.
func (uf *UnionFind) Count() int { return uf.count }

// Len returns the size of the universe.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Size returns the number of elements in x's component.
func (uf *UnionFind) Size(x int) int { return uf.size[uf.Find(x)] }

// Free releases the backing arrays. The structure behaves as an empty
// universe afterwards.
func (uf *UnionFind) Free() {
	uf.parent = nil
	uf.size = nil
	uf.count = 0
}
