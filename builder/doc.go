// SPDX-License-Identifier: MIT

// Package builder assembles Steiner instances on core.Graph from small,
// composable constructors.
//
// BuildGraph creates the graph and runs the constructors in order:
// topologies (Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse,
// HananGrid) add nodes and edges, then Root, Terminals, RandomTerminals
// and PrizeCollecting classify nodes and turn the graph into the problem
// type wanted.
//
// Configuration follows the functional-options style:
//
//   - BuilderOption:  a function that mutates builderConfig before use.
//   - WithSeed/WithRand: the RNG of the stochastic constructors.
//   - WithWeightFn and friends: the cost of every generated edge.
//
// Guarantees:
//
//   - Determinism: the same constructors, options and seed give the same
//     graph, arc for arc.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
//   - Edges are undirected pairs with the same cost in both directions,
//     except the arcs PrizeCollecting adds.
package builder
