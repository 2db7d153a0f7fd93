package bridge

import (
	"github.com/katalvlaran/lvds/bfs"
	"github.com/katalvlaran/lvds/core"
	"github.com/katalvlaran/lvds/dfs"
	"github.com/katalvlaran/lvds/dijkstra"
	"github.com/katalvlaran/lvds/prim_kruskal"
)

// NewGraph creates a graph with vertices 0..vertices-1 and no edges.
func (r *Registry) NewGraph(vertices int) Handle {
	return r.register(KindGraph, core.NewGraph(core.WithVertices(vertices)))
}

// AdoptGraph registers g under a new handle. The registry owns g from then
// on; callers must not touch it directly.
func (r *Registry) AdoptGraph(g *core.Graph) Handle {
	return r.register(KindGraph, g)
}

// GraphAddVertex appends a vertex and returns its id.
func (r *Registry) GraphAddVertex(h Handle) (id int, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		id = g.AddVertex()
		return nil
	})

	return id, err
}

// GraphRemoveVertex removes id and every edge touching it.
func (r *Registry) GraphRemoveVertex(h Handle, id int) error {
	return with(r, h, KindGraph, func(g *core.Graph) error {
		return g.RemoveVertex(id)
	})
}

// GraphAddEdge adds the directed edge u→v.
func (r *Registry) GraphAddEdge(h Handle, u, v int, w float64) error {
	return with(r, h, KindGraph, func(g *core.Graph) error {
		return g.AddEdge(u, v, w)
	})
}

// GraphAddUndirectedEdge adds u→v and v→u with the same weight.
func (r *Registry) GraphAddUndirectedEdge(h Handle, u, v int, w float64) error {
	return with(r, h, KindGraph, func(g *core.Graph) error {
		return g.AddUndirectedEdge(u, v, w)
	})
}

// GraphRemoveEdge removes the directed edge u→v.
func (r *Registry) GraphRemoveEdge(h Handle, u, v int) error {
	return with(r, h, KindGraph, func(g *core.Graph) error {
		return g.RemoveEdge(u, v)
	})
}

// GraphVertexCount returns the number of live vertices.
func (r *Registry) GraphVertexCount(h Handle) (n int, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		n = g.VertexCount()
		return nil
	})

	return n, err
}

// GraphEdges returns every stored edge entry.
func (r *Registry) GraphEdges(h Handle) (edges []core.Edge, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		edges = g.Edges()
		return nil
	})

	return edges, err
}

// GraphBFS returns the breadth-first visit order from start.
func (r *Registry) GraphBFS(h Handle, start int) (order []int, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		res, err := bfs.BFS(g, start)
		if err != nil {
			return err
		}
		order = res.Order

		return nil
	})

	return order, err
}

// GraphDFS returns the depth-first pre-order from start.
func (r *Registry) GraphDFS(h Handle, start int) (order []int, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		res, err := dfs.DFS(g, start)
		if err != nil {
			return err
		}
		order = res.Order

		return nil
	})

	return order, err
}

// GraphDijkstra computes shortest paths from start.
func (r *Registry) GraphDijkstra(h Handle, start int) (res *dijkstra.Result, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		res, err = dijkstra.Dijkstra(g, dijkstra.Source(start))
		return err
	})

	return res, err
}

// GraphPrim computes a minimum spanning tree from the lowest vertex id,
// treating every edge as undirected.
func (r *Registry) GraphPrim(h Handle) (mst *prim_kruskal.MST, err error) {
	err = with(r, h, KindGraph, func(g *core.Graph) error {
		mst, err = prim_kruskal.Prim(g, prim_kruskal.WithIgnoreDirection())
		return err
	})

	return mst, err
}
