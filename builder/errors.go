// SPDX-License-Identifier: MIT
package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a failed graph
	// mutation.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadTerminal indicates a terminal or root index outside the graph,
	// or a terminal count the graph cannot hold.
	ErrBadTerminal = errors.New("builder: invalid terminal")
)
