package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/core"
	"github.com/katalvlaran/steinercore/reduce"
)

// buildSquare returns the 4-cycle 0-1-2-3-0 with unit costs, root 0 and
// terminal 2, histories enabled.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(2, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(1, 2, 1, 1)
	g.MustAddEdge(2, 3, 1, 1)
	g.MustAddEdge(3, 0, 1, 1)
	g.InitHistory()

	return g
}

// TestDegree_LeavesAndDanglingNodes fixes the terminal leaves of a star
// and deletes its non-terminal leaf.
func TestDegree_LeavesAndDanglingNodes(t *testing.T) {
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(2, core.Terminal)
	g.MustAddEdge(0, 1, 2, 2) // arcs 0,1
	g.MustAddEdge(1, 2, 3, 3) // arcs 2,3
	g.MustAddEdge(1, 3, 1, 1) // arcs 4,5
	g.InitHistory()

	st, err := reduce.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Deleted)
	assert.Equal(t, 2, st.Fixed)
	assert.Equal(t, 0, st.Contracted)
	assert.InDelta(t, 5.0, st.Offset, 1e-9)
	assert.InDelta(t, 5.0, g.Offset(), 1e-9)
	assert.True(t, st.Changed())

	assert.Equal(t, 1, g.Root())
	assert.Equal(t, 1, g.NTerms())
	assert.Zero(t, g.NLiveEdges())
	assert.ElementsMatch(t, []int{0, 2}, g.Arena().Values(g.Fixed()))
	require.NoError(t, g.Valid())
}

// TestDegree_BypassMergesHistories replaces node 1 of the square by an
// edge 2–0 carrying both replaced edges, then drops node 3 as dominated.
func TestDegree_BypassMergesHistories(t *testing.T) {
	g := buildSquare(t)

	st, err := reduce.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Contracted)
	assert.Equal(t, 1, st.Deleted)
	assert.Equal(t, 1, st.Fixed)
	assert.InDelta(t, 2.0, st.Offset, 1e-9)

	assert.Equal(t, 2, g.Root())
	assert.ElementsMatch(t, []int{0, 2}, g.Arena().Values(g.Fixed()))
	require.NoError(t, g.Valid())
}

// TestDegree_Idempotent checks a reduced graph stays unchanged.
func TestDegree_Idempotent(t *testing.T) {
	g := buildSquare(t)
	_, err := reduce.Degree(g)
	require.NoError(t, err)

	st, err := reduce.Degree(g)
	require.NoError(t, err)
	assert.False(t, st.Changed())
}

// TestDegree_KeepsMixedParallel leaves a degree-2 node whose bypass is
// only cheaper in one direction.
func TestDegree_KeepsMixedParallel(t *testing.T) {
	g := core.New()
	g.AddNodes(3)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(1, core.Terminal)
	g.MustAddEdge(0, 1, 5, 1)
	g.MustAddEdge(0, 2, 1, 1)
	g.MustAddEdge(2, 1, 1, 5)

	st, err := reduce.Degree(g)
	require.NoError(t, err)
	assert.False(t, st.Changed())
	assert.Equal(t, 2, g.Degree(2))
}

// TestDegree_Infeasible reports an isolated terminal.
func TestDegree_Infeasible(t *testing.T) {
	g := core.New()
	g.AddNodes(1)
	require.NoError(t, g.SetRoot(0))
	g.AddNode(core.Terminal)

	_, err := reduce.Degree(g)
	assert.ErrorIs(t, err, reduce.ErrInfeasible)

	_, err = reduce.Degree(core.New())
	assert.ErrorIs(t, err, reduce.ErrNoRoot)
}

// TestLevel0_DeletesUnreachable removes a component hanging off nothing.
func TestLevel0_DeletesUnreachable(t *testing.T) {
	g := core.New()
	g.AddNodes(4)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(1, core.Terminal)
	g.MustAddEdge(0, 1, 1, 1)
	g.MustAddEdge(2, 3, 1, 1)

	st, err := reduce.Level0(g)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Deleted)
	assert.Equal(t, 1, g.NLiveEdges())
	assert.False(t, g.Mark(2))
}

// TestLevel0_ForbiddenArcs treats Faraway arcs as missing.
func TestLevel0_ForbiddenArcs(t *testing.T) {
	g := core.New()
	g.AddNodes(2)
	require.NoError(t, g.SetRoot(0))
	g.SetTerm(1, core.Terminal)
	g.MustAddEdge(1, 0, 1, core.Faraway)

	_, err := reduce.Level0(g)
	assert.ErrorIs(t, err, reduce.ErrInfeasible)
	assert.Equal(t, 1, g.NLiveEdges())
}
