// Package core provides the edge-pair array graph shared by every Steiner
// algorithm in this module.
//
// Every undirected edge occupies two adjacent slots e and e^1 (its flip);
// each slot is a directed arc with its own tail, head and cost, so the two
// directions of one edge may be priced differently (prize-collecting
// variants rely on that). Arcs are threaded into per-node singly linked
// adjacency lists:
//
//	outbeg[k] → oeat[e] → oeat[e'] → … → EdgeEnd   (arcs leaving k)
//	inpbeg[k] → ieat[e] → ieat[e'] → … → EdgeEnd   (arcs entering k)
//
// New arcs are linked at the front, so lists run from the most recently
// added arc to the oldest one. Deleting a pair unlinks both arcs and marks
// the slots free; slot indices are never reused.
//
// Nodes carry:
//
//   - a terminal class (NonTerminal, Terminal, PseudoTerminal),
//   - a mark flag used as borrowed scratch by the algorithms and restored
//     with ResetMarks (mark[k] = degree[k] > 0),
//   - a degree, and an optional prize for prize-collecting problem types.
//
// Edge histories: after InitHistory every edge pair owns an ancestor chain
// (see package ancestor) naming the original pairs it stands for.
// Contractions merge chains; edges contracted into the solution move to
// the Fixed chain and their cost to Offset.
//
// Iterating:
//
//	for e := g.OutBeg(k); e != core.EdgeEnd; e = g.OutNext(e) {
//	    w := g.Head(e)
//	    ...
//	}
//
// Callers that delete while iterating must read OutNext before deleting.
//
// A Graph is not safe for concurrent use; the solver runs one subproblem
// at a time.
package core
