// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/steinercore/core"
)

const (
	methodRoot            = "Root"
	methodTerminals       = "Terminals"
	methodRandomTerminals = "RandomTerminals"
	methodPrizeCollecting = "PrizeCollecting"
)

// Root makes k the root (and a terminal).
func Root(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < 0 || k >= g.NNodes() {
			return fmt.Errorf("%s: node %d of %d: %w", methodRoot, k, g.NNodes(), ErrBadTerminal)
		}

		return g.SetRoot(k)
	}
}

// Terminals marks ks as terminals. When the graph has no root yet the
// first of them becomes the root.
func Terminals(ks ...int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, k := range ks {
			if k < 0 || k >= g.NNodes() {
				return fmt.Errorf("%s: node %d of %d: %w", methodTerminals, k, g.NNodes(), ErrBadTerminal)
			}
		}
		for _, k := range ks {
			if g.Root() < 0 {
				if err := g.SetRoot(k); err != nil {
					return err
				}
				continue
			}
			g.SetTerm(k, core.Terminal)
		}

		return nil
	}
}

// RandomTerminals marks t distinct random non-terminals as terminals,
// rooting the graph at the first one when it has no root yet.
func RandomTerminals(t int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTerminals, ErrNeedRandSource)
		}
		free := make([]int, 0, g.NNodes())
		for k := 0; k < g.NNodes(); k++ {
			if g.Term(k) == core.NonTerminal {
				free = append(free, k)
			}
		}
		if t < 1 || t > len(free) {
			return fmt.Errorf("%s: t=%d with %d free nodes: %w", methodRandomTerminals, t, len(free), ErrBadTerminal)
		}
		cfg.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

		return Terminals(free[:t]...)(g, cfg)
	}
}

// PrizeCollecting turns the graph into a rooted prize-collecting instance:
// every non-root node gets a prize from the prize generator, terminals
// other than the root become ordinary nodes, the type becomes RPCSPG and
// the graph is transformed (core.Graph.TransformPrizeCollecting).
func PrizeCollecting() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		root := g.Root()
		if root < 0 {
			return fmt.Errorf("%s: no root: %w", methodPrizeCollecting, ErrBadTerminal)
		}
		g.SetType(core.RPCSPG)
		for k := 0; k < g.NNodes(); k++ {
			if k == root {
				continue
			}
			g.SetTerm(k, core.NonTerminal)
			g.SetPrize(k, cfg.prizeFn(cfg.rng))
		}
		if _, err := g.TransformPrizeCollecting(); err != nil {
			return fmt.Errorf("%s: %w", methodPrizeCollecting, err)
		}

		return nil
	}
}
