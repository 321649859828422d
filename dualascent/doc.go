// SPDX-License-Identifier: MIT

// Package dualascent implements Wong's dual ascent for the rooted Steiner
// arborescence formulation of a core.Graph.
//
// Every terminal other than the root starts active. An active terminal's
// component is the set of nodes that reach it over arcs of zero reduced
// cost. While that component does not contain the root, the cheapest arc
// entering it sets the increase: all entering arcs drop by that amount and
// the lower bound grows by it. Terminals are served smallest score first,
// the score being the number of arcs entering the component.
//
// The reduced costs are nonnegative, zero on at least one root-terminal
// path per terminal, and feed the ascend-and-prune heuristic.
package dualascent
