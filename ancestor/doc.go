// Package ancestor stores integer provenance chains: the lists of original
// edge indices that a contracted or merged edge of a reduced graph stands
// for.
//
// Chains live in an Arena and are referred to by List handles. Nodes carry
// a reference count, so two chains may share a suffix (see Arena.Share)
// and be freed independently without double release. AppendCopy never
// mutates a chain in place; it prepends new nodes, which keeps shared
// suffixes intact.
//
// The arena is not safe for concurrent use.
package ancestor
