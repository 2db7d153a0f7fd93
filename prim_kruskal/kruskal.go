package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvds/core"
)

// Kruskal computes a minimum spanning forest of the undirected edge set
// underlying graph: every entry u→v is treated as the edge {u,v}, so the two
// entries of an undirected edge are considered together and only one is kept.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Self-loops are skipped. On a disconnected graph the result is a forest
// with Spanning == false rather than an error.
//
// Error Conditions:
//   - ErrNilGraph   : graph is nil.
//   - ErrEmptyGraph : graph has no vertices.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*MST, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}

	// graph.Edges() is sorted by (From, To); the stable sort keeps that as the tie-break.
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v and reports whether they were disjoint.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	res := &MST{
		Root:    vertices[0],
		Edges:   make([]core.Edge, 0, len(vertices)-1),
		Reached: vertices,
	}
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		if len(res.Edges) == len(vertices)-1 {
			break
		}
	}
	res.Spanning = len(res.Edges) == len(vertices)-1

	return res, nil
}
