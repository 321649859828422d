// SPDX-License-Identifier: MIT
package reduce

import (
	"fmt"

	"github.com/katalvlaran/steinercore/bfs"
	"github.com/katalvlaran/steinercore/core"
)

// Level0 deletes every node that cannot be reached from the root along
// arcs cheaper than core.Faraway. A terminal left behind makes the
// instance infeasible; nothing is deleted in that case.
func Level0(g *core.Graph) (Stats, error) {
	var st Stats
	root := g.Root()
	if root < 0 {
		return st, ErrNoRoot
	}

	cost := g.Costs()
	res, err := bfs.BFS(g, root, bfs.WithFilterEdge(func(e int) bool {
		return core.IsLT(cost[e], core.Faraway)
	}))
	if err != nil {
		return st, err
	}

	for k := 0; k < g.NNodes(); k++ {
		if !res.Reached(k) && g.IsTerm(k) {
			return st, fmt.Errorf("%w: terminal %d unreachable from root %d", ErrInfeasible, k, root)
		}
	}
	var doomed []int
	for k := 0; k < g.NNodes(); k++ {
		if !res.Reached(k) && g.Degree(k) > 0 {
			doomed = append(doomed, k)
		}
	}
	for _, k := range doomed {
		if err := g.DeleteNode(k); err != nil {
			return st, err
		}
		g.SetTerm(k, core.NonTerminal)
		st.Deleted++
	}

	return st, nil
}
