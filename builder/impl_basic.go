// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path appends n nodes joined as a path b, b+1, …, b+n-1, where b is the
// node count before the call.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b := g.AddNodes(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, b+i, b+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle appends a cycle of n nodes; the closing edge comes last.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b := g.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, b+i, b+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star appends a center followed by n-1 leaves, the center first.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, b, b+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel appends a center and a rim cycle of n-1 nodes. Spokes come first,
// then the rim.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		b := g.AddNodes(n)
		rim := n - 1
		for i := 1; i <= rim; i++ {
			if err := addEdge(g, cfg, methodWheel, b, b+i); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, b+1+i, b+1+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete appends K_n, pairs in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b := g.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
