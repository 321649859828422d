// SPDX-License-Identifier: MIT

// Package reduce implements the cheap graph reductions run before and
// inside the Steiner heuristics.
//
// Level0 drops every node that cannot be reached from the root. Degree
// applies the classic degree tests until nothing changes:
//
//   - a non-terminal of degree 0 or 1 is deleted;
//   - a non-terminal of degree 2 is replaced by a single edge joining its
//     neighbours, whose history is the union of the two replaced ones;
//   - a terminal of degree 1 must use its only edge, which is fixed into
//     the solution and contracted.
//
// Both operate in place on a core.Graph. Run them on a clone when the
// original must survive; fixed edges are then read back through
// Graph.Fixed and Graph.Offset of the clone.
package reduce
