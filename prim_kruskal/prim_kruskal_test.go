package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvds/core"
	"github.com/katalvlaran/lvds/prim_kruskal"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// This graph’s MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithVertices(3))
	_ = g.AddUndirectedEdge(0, 1, 1)
	_ = g.AddUndirectedEdge(1, 2, 2)
	_ = g.AddUndirectedEdge(0, 2, 3)

	return g
}

// buildMediumGraph creates a connected, undirected, weighted graph with n vertices and
// edgesCount undirected edges. A chain 0—1—…—(n-1) guarantees connectivity; the rest
// are random extra edges. The random source is seeded for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph {
	g := core.NewGraph(core.WithVertices(n))
	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		_ = g.AddUndirectedEdge(i-1, i, float64(1+r.Intn(10)))
	}
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if g.AddUndirectedEdge(u, v, float64(1+r.Intn(100))) == nil {
			added++
		}
	}

	return g
}

func TestPrim_Errors(t *testing.T) {
	_, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Prim(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = prim_kruskal.Prim(buildTriangle(), prim_kruskal.WithRoot(9))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)
}

func TestPrim_Triangle(t *testing.T) {
	mst, err := prim_kruskal.Prim(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 0, mst.Root)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, mst.Edges)
	assert.Equal(t, 3.0, mst.Total)
	assert.Equal(t, []int{0, 1, 2}, mst.Reached)
	assert.True(t, mst.Spanning)
}

func TestPrim_CustomRoot(t *testing.T) {
	mst, err := prim_kruskal.Prim(buildTriangle(), prim_kruskal.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, 2, mst.Root)
	assert.Equal(t, []int{2, 1, 0}, mst.Reached)
	assert.Equal(t, 3.0, mst.Total)
}

func TestPrim_SingleVertex(t *testing.T) {
	mst, err := prim_kruskal.Prim(core.NewGraph(core.WithVertices(1)))
	require.NoError(t, err)
	assert.Empty(t, mst.Edges)
	assert.Zero(t, mst.Total)
	assert.True(t, mst.Spanning)
}

// TestPrim_TieBreak uses a unit-weight square; ties go to the lower new vertex,
// then to the lower tree endpoint.
func TestPrim_TieBreak(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1], 1))
	}

	mst, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 3, Weight: 1},
	}, mst.Edges)
	assert.Equal(t, []int{0, 1, 2, 3}, mst.Reached)
}

// TestPrim_Disconnected halts with a partial tree instead of failing.
func TestPrim_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 1))

	mst, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.False(t, mst.Spanning)
	assert.Equal(t, []int{0, 1}, mst.Reached)
	assert.Len(t, mst.Edges, 1)
}

func TestPrim_IgnoreDirection(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddEdge(1, 0, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))

	mst, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, mst.Reached, "1 is only reachable against the entry direction")
	assert.False(t, mst.Spanning)

	mst, err = prim_kruskal.Prim(g, prim_kruskal.WithIgnoreDirection())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, mst.Reached)
	assert.Equal(t, core.Edge{From: 1, To: 0, Weight: 1}, mst.Edges[0], "edge is reported as stored")
	assert.Equal(t, 6.0, mst.Total)
	assert.True(t, mst.Spanning)
}

// TestPrim_UndirectedOrientation reports every tree edge parent→child, even
// though each undirected edge is also offered as its reverse entry.
func TestPrim_UndirectedOrientation(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	for v := 1; v < 4; v++ {
		require.NoError(t, g.AddUndirectedEdge(v-1, v, 1))
	}

	for range 3 {
		mst, err := prim_kruskal.Prim(g, prim_kruskal.WithIgnoreDirection())
		require.NoError(t, err)
		assert.Equal(t, []core.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 2, Weight: 1},
			{From: 2, To: 3, Weight: 1},
		}, mst.Edges)
	}

	mst, err := prim_kruskal.Prim(g, prim_kruskal.WithIgnoreDirection(), prim_kruskal.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 3, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: 1},
	}, mst.Edges)
}

func TestKruskal_Errors(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
}

func TestKruskal_Triangle(t *testing.T) {
	mst, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, mst.Edges)
	assert.Equal(t, 3.0, mst.Total)
	assert.True(t, mst.Spanning)
}

func TestKruskal_ForestAndSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithVertices(5))
	require.NoError(t, g.AddUndirectedEdge(0, 1, 2))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(4, 4, 0))

	mst, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 3, Weight: 1}, {From: 0, To: 1, Weight: 2}}, mst.Edges)
	assert.Equal(t, 3.0, mst.Total)
	assert.False(t, mst.Spanning)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, mst.Reached)
}

// TestPrimKruskal_SameTotal cross-checks both algorithms on random connected graphs.
func TestPrimKruskal_SameTotal(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := buildMediumGraph(60, 200, seed)

		p, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		assert.True(t, p.Spanning)
		assert.True(t, k.Spanning)
		assert.Len(t, p.Edges, 59)
		assert.Len(t, k.Edges, 59)
		assert.Equal(t, k.Total, p.Total, "seed %d", seed)
	}
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	mst, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mst.Total)

	mst, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, 3.0, mst.Total)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
