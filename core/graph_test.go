package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/core"
)

// buildSquare returns the 4-cycle 0-1-2-3-0 with unit costs, root 0 and
// terminal 2.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(core.WithCapacity(4, 4))
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(2, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(1, 2, 1, 1)
	g.MustAddEdge(2, 3, 1, 1)
	g.MustAddEdge(3, 0, 1, 1)

	return g
}

// TestAddEdge_PairsAndLists checks arc pairing, flips and adjacency order.
func TestAddEdge_PairsAndLists(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.Valid())

	assert.Equal(t, 8, g.NEdges())
	assert.Equal(t, 4, g.NLiveEdges())
	assert.Equal(t, 2, g.NTerms())
	assert.Equal(t, 1, core.Flip(0))
	assert.Equal(t, 0, core.Flip(1))
	assert.Equal(t, g.Tail(2), g.Head(3))

	// newest arc first: 0's arcs are 7 (0→3) then 0 (0→1)
	assert.Equal(t, []int{7, 0}, g.EdgesOf(0))
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 6, g.FindEdge(3, 0))
	assert.Equal(t, -1, g.FindEdge(0, 2))
}

// TestAddEdge_Errors covers the rejected inputs.
func TestAddEdge_Errors(t *testing.T) {
	g := core.New()
	g.AddNodes(2)
	_, err := g.AddEdge(0, 0, 1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(0, 5, 1, 1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.ErrorIs(t, g.DeleteEdge(10), core.ErrEdgeOutOfRange)
}

// TestDeleteEdge_UnlinksBothArcs deletes an edge and checks the lists.
func TestDeleteEdge_UnlinksBothArcs(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.DeleteEdge(3)) // pair {2,3} = 1–2

	assert.True(t, g.EdgeDeleted(2))
	assert.True(t, g.EdgeDeleted(3))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))
	assert.Equal(t, -1, g.FindEdge(1, 2))
	assert.ErrorIs(t, g.DeleteEdge(2), core.ErrEdgeDeleted)
	require.NoError(t, g.Valid())
}

// TestDeleteNode_ResetMarks removes a node and restores marks from degrees.
func TestDeleteNode_ResetMarks(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.DeleteNode(3))
	assert.Zero(t, g.Degree(3))
	assert.False(t, g.Mark(3))

	g.SetMark(1, false)
	g.ResetMarks()
	assert.True(t, g.Mark(1))
	assert.False(t, g.Mark(3))
	require.NoError(t, g.Valid())
}

// TestContract_MergesParallelAndHistory contracts node 1 into node 0 on a
// triangle and checks the surviving edge and its history.
func TestContract_MergesParallelAndHistory(t *testing.T) {
	g := core.New()
	g.AddNodes(3)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(1, core.Terminal)
	e01 := g.MustAddEdge(0, 1, 1, 1)
	e12 := g.MustAddEdge(1, 2, 2, 2)
	e02 := g.MustAddEdge(0, 2, 5, 5)
	g.InitHistory()

	g.FixEdge(e01)
	require.NoError(t, g.Contract(0, 1))
	require.NoError(t, g.Valid())

	assert.Equal(t, 1, g.NTerms(), "terminal 1 folded into the root")
	assert.Equal(t, 1.0, g.Offset())
	assert.Equal(t, []int{e01}, g.Arena().Values(g.Fixed()))

	// 1–2 was cheaper than 0–2 so the pair of e02 now carries e12's history
	assert.Equal(t, 2.0, g.Cost(e02))
	assert.Equal(t, []int{e12}, g.Arena().Values(g.Ancestors(e02)))
	assert.Equal(t, 1, g.Degree(0))
}

// TestContract_MovesRoot contracts the root into a neighbour.
func TestContract_MovesRoot(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.Contract(1, 0))
	assert.Equal(t, 1, g.Root())
	assert.True(t, g.IsTerm(1))
	assert.Equal(t, 2, g.Degree(1))
	require.NoError(t, g.Valid())
}

// TestClone_Independent mutates a clone and checks the original.
func TestClone_Independent(t *testing.T) {
	g := buildSquare(t)
	g.InitHistory()
	c := g.Clone()

	require.NoError(t, c.DeleteEdge(0))
	c.SetCost(2, 42)
	assert.False(t, g.EdgeDeleted(0))
	assert.Equal(t, 1.0, g.Cost(2))
	assert.Equal(t, []int{0}, g.Arena().Values(g.Ancestors(0)))

	c.Release()
	assert.Equal(t, []int{2}, g.Arena().Values(g.Ancestors(2)))
}

// TestSolutionValid covers feasible, disconnected and deleted selections.
func TestSolutionValid(t *testing.T) {
	g := buildSquare(t)
	sel := make([]bool, g.NEdges())
	assert.False(t, g.SolutionValid(sel))

	sel[0], sel[2] = true, true // 0→1→2
	assert.True(t, g.SolutionValid(sel))
	assert.Equal(t, 2.0, g.SolutionCost(sel))
	nodes := g.SolutionNodes(sel)
	assert.Equal(t, []bool{true, true, true, false}, nodes)

	require.NoError(t, g.DeleteEdge(2))
	assert.False(t, g.SolutionValid(sel))
}

// TestTransformPrizeCollecting checks the artificial terminals.
func TestTransformPrizeCollecting(t *testing.T) {
	g := core.New(core.WithType(core.RPCSPG))
	g.AddNodes(3)
	require.NoError(t, g.SetRoot(0))
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(1, 2, 1, 1)
	g.SetPrize(2, 4)

	added, err := g.TransformPrizeCollecting()
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.True(t, g.IsPseudoTerm(2))
	assert.False(t, g.IsTerm(2))
	assert.Equal(t, core.PseudoTerminal, g.Term(2))
	assert.Equal(t, core.Term(1), core.PseudoTerminal)
	assert.Equal(t, 2, g.NTerms())

	e := g.PseudoTerminalArc(2)
	require.NotEqual(t, -1, e)
	assert.Equal(t, 0.0, g.Cost(e))
	assert.Equal(t, 3, g.Head(e))
	rootArc := g.FindEdge(0, 3)
	require.NotEqual(t, -1, rootArc)
	assert.Equal(t, 4.0, g.Cost(rootArc))
	require.NoError(t, g.Valid())

	_, err = core.New().TransformPrizeCollecting()
	assert.ErrorIs(t, err, core.ErrNoPrizes)
}

// TestNumerics pins the tolerance helpers.
func TestNumerics(t *testing.T) {
	assert.True(t, core.IsEQ(1, 1+core.Eps/2))
	assert.True(t, core.IsLT(1, 1.1))
	assert.False(t, core.IsLT(1, 1+core.Eps/2))
	assert.True(t, core.IsGE(1, 1+core.Eps/2))
	assert.True(t, core.IsZero(-core.Eps/2))
	assert.Equal(t, "RPCSPG", core.RPCSPG.String())
	assert.True(t, core.MWCSP.IsPcMw())
	assert.True(t, core.RSMT.IsSteinerLike())
}
