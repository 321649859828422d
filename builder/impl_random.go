// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse appends n nodes joined by a random spanning tree, then adds
// every other pair independently with probability p. The tree keeps the
// instance connected: node perm[i] attaches to a random earlier node of
// a random permutation. Pairs are tried in lexicographic order.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		rng := cfg.rng
		b := g.AddNodes(n)

		perm := rng.Perm(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodRandomSparse, b+perm[rng.Intn(i)], b+perm[i]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p || g.FindEdge(b+i, b+j) >= 0 {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
