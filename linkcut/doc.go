// Package linkcut implements a simplified, unbalanced link-cut forest over
// the nodes of a core.Graph.
//
// Every node is either a root (parent -1, edge -1) or hangs below its
// parent through exactly one graph edge whose tail is the node itself.
// All path operations walk parent links explicitly, so they cost O(depth).
// No balancing is done; the trees handled by local search stay shallow.
package linkcut
