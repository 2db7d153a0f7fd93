package core_test

import (
	"testing"

	"github.com/katalvlaran/lvds/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
)

// TestAddVertex_IDsAreSequentialAndStable verifies ID issuance and that removal never renumbers.
func TestAddVertex_IDsAreSequentialAndStable(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddVertex())
	assert.Equal(t, 1, g.AddVertex())
	assert.Equal(t, 2, g.AddVertex())

	require.NoError(t, g.RemoveVertex(1))
	assert.Equal(t, []int{0, 2}, g.Vertices())
	// removed IDs are not reused
	assert.Equal(t, 3, g.AddVertex())
	assert.False(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(3))
}

// TestWithVertices pre-creates 0..n-1.
func TestWithVertices(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4), core.WithCapacity(16))
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.Equal(t, 4, g.AddVertex())

	neg := core.NewGraph(core.WithVertices(-3))
	assert.Zero(t, neg.VertexCount())
}

// TestAddEdge_Errors covers missing endpoints and parallel-edge policy.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(core.WithVertices(2))

	assert.ErrorIs(t, g.AddEdge(0, 7, Weight1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 0, Weight1), core.ErrVertexNotFound)

	require.NoError(t, g.AddEdge(0, 1, Weight1))
	assert.ErrorIs(t, g.AddEdge(0, 1, Weight2), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())

	// the reverse direction is a different entry
	require.NoError(t, g.AddEdge(1, 0, Weight2))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestAddUndirectedEdge_Atomic checks both entries appear, and a rejected call inserts nothing.
func TestAddUndirectedEdge_Atomic(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddUndirectedEdge(0, 1, Weight5))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 2, g.EdgeCount())

	// 2→1 is free but 1→2 exists: the whole call must fail.
	require.NoError(t, g.AddEdge(1, 2, Weight1))
	err := g.AddUndirectedEdge(2, 1, Weight1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.False(t, g.HasEdge(2, 1))
	assert.Equal(t, 3, g.EdgeCount())
}

// TestSelfLoop is allowed and stored once for undirected edges.
func TestSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithVertices(1))
	require.NoError(t, g.AddUndirectedEdge(0, 0, Weight2))
	assert.Equal(t, 1, g.EdgeCount())

	in, out, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)

	require.NoError(t, g.RemoveUndirectedEdge(0, 0))
	assert.Zero(t, g.EdgeCount())
}

// TestMultiEdges keeps parallel entries in insertion order and removes the earliest first.
func TestMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithVertices(2), core.WithMultiEdges())
	require.True(t, g.Multigraph())
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 1))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, 3.0, nbs[0].Weight)
	assert.Equal(t, 1.0, nbs[1].Weight)

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	require.NoError(t, g.RemoveEdge(0, 1))
	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	assert.True(t, g.HasEdge(0, 1))

	require.NoError(t, g.RemoveEdge(0, 1))
	assert.False(t, g.HasEdge(0, 1))
	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
}

// TestNeighbors_SortedByTarget ensures deterministic adjacency order regardless of insertion order.
func TestNeighbors_SortedByTarget(t *testing.T) {
	g := core.NewGraph(core.WithVertices(5))
	for _, to := range []int{4, 1, 3, 2} {
		require.NoError(t, g.AddEdge(0, to, float64(to)))
	}
	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestInNeighbors lists entries ending at a vertex, ordered by source.
func TestInNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	require.NoError(t, g.AddEdge(3, 0, 1))
	require.NoError(t, g.AddEdge(1, 0, 2))
	require.NoError(t, g.AddEdge(2, 1, 5))

	in, err := g.InNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 2}, {From: 3, To: 0, Weight: 1}}, in)
}

// TestRemoveVertex_Cascades removes incident entries in both directions.
func TestRemoveVertex_Cascades(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(1, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.Equal(t, 6, g.EdgeCount())

	require.NoError(t, g.RemoveVertex(1))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: 2, To: 3, Weight: 1}}, g.Edges())
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(2, 1))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	assert.ErrorIs(t, g.RemoveVertex(1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrVertexNotFound)
}

// TestRemoveEdge_Errors distinguishes missing vertices from missing edges.
func TestRemoveEdge_Errors(t *testing.T) {
	g := core.NewGraph(core.WithVertices(2))
	assert.ErrorIs(t, g.RemoveEdge(0, 9), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)

	require.NoError(t, g.AddEdge(0, 1, 1))
	assert.ErrorIs(t, g.RemoveUndirectedEdge(0, 1), core.ErrEdgeNotFound)
	assert.True(t, g.HasEdge(0, 1), "failed undirected removal must not touch the graph")
}

// TestEdges_Order lists entries by (From, To).
func TestEdges_Order(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 0, Weight: 1},
	}, g.Edges())
}

// TestClone_Independent verifies deep copy semantics.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddUndirectedEdge(0, 1, 4))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, 1))
	require.NoError(t, c.RemoveVertex(0))

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, c.EdgeCount())
	assert.Equal(t, g.AddVertex(), c.AddVertex())
}

// TestClear resets state but keeps flags.
func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3), core.WithMultiEdges())
	require.NoError(t, g.AddEdge(0, 1, 1))
	g.Clear()

	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Multigraph())
	assert.Equal(t, 0, g.AddVertex())
}
