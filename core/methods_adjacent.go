// File: methods_adjacent.go
// Role: Adjacency queries used by the traversal and path algorithms.
//
// Determinism:
//   - Neighbors/NeighborIDs are ordered by target ID ascending.
//   - InNeighbors is ordered by source ID ascending.
//
// AI-Hints (file):
//   - Algorithms must only rely on these orderings, never on map iteration.
package core

import (
	"fmt"
	"slices"
)

// Neighbors returns a copy of the outgoing entries of id, sorted by To.
// Parallel entries appear in insertion order.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return slices.Clone(g.out[id]), nil
}

// NeighborIDs returns the distinct targets of id's outgoing entries, ascending.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(edges))
	for _, e := range edges {
		// edges are sorted by To, so duplicates are adjacent
		if n := len(ids); n > 0 && ids[n-1] == e.To {
			continue
		}
		ids = append(ids, e.To)
	}

	return ids, nil
}

// InNeighbors returns every entry that ends at id, sorted by From.
//
// Complexity:
//   - Time O(p·log p + Σ deg(pred)) where p is the number of distinct predecessors.
func (g *Graph) InNeighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	preds := make([]int, 0, len(g.in[id]))
	for u := range g.in[id] {
		preds = append(preds, u)
	}
	slices.Sort(preds)

	var out []Edge
	for _, u := range preds {
		bucket := g.out[u]
		for i := lowerBound(bucket, id); i < len(bucket) && bucket[i].To == id; i++ {
			out = append(out, bucket[i])
		}
	}

	return out, nil
}
