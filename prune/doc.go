// SPDX-License-Identifier: MIT

// Package prune turns a connected node set into a Steiner tree and hosts
// the small primal heuristic used by ascend-and-prune.
//
// SteinerTree spans the given nodes with a minimum spanning tree from the
// root and strips non-terminal leaves until none is left. PCSteinerTree
// does the same for transformed prize-collecting graphs: subtrees whose
// prizes do not pay for their edges are cut, and every artificial
// terminal is then reached either through its pseudo-terminal (when that
// survived) or directly from the root at the price of the prize.
//
// TM grows a tree from the root by repeatedly attaching the terminal that
// is closest to the current tree. Run chains degree reductions on a
// clone, TM on the reduced clone, a lift back through the edge histories
// and a final SteinerTree on the input graph.
package prune
