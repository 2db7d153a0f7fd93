// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Every method takes g.mu; readers use RLock.
package core

import (
	"fmt"
	"slices"
)

// AddVertex creates a new vertex and returns its ID.
//
// IDs are issued in increasing order starting at 0 and are never reused,
// even after RemoveVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked()
}

// addVertexLocked registers the next ID. Caller holds g.mu.
func (g *Graph) addVertexLocked() int {
	id := g.nextID
	g.nextID++
	g.vertices[id] = struct{}{}

	return id
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every entry that starts or ends at it.
//
// Implementation:
//   - Stage 1: Verify vertex presence (ErrVertexNotFound).
//   - Stage 2: Drop the outgoing bucket and unlink the in-counters of its targets.
//   - Stage 3: Visit each predecessor recorded in g.in[id] and strip entries →id.
//   - Stage 4: Delete the vertex from the catalog.
//
// The remaining vertex IDs are left unchanged.
//
// Complexity:
//   - Time O(deg(v) + Σ deg(pred)), Space O(1) extra.
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	// Outgoing entries: forget them on the target side.
	for _, e := range g.out[id] {
		g.decIn(e.To, id)
		g.edgeCnt--
	}
	delete(g.out, id)

	// Incoming entries: every predecessor still holds u→id entries.
	for u := range g.in[id] {
		before := len(g.out[u])
		g.out[u] = slices.DeleteFunc(g.out[u], func(e Edge) bool { return e.To == id })
		g.edgeCnt -= before - len(g.out[u])
		if len(g.out[u]) == 0 {
			delete(g.out, u)
		}
	}
	delete(g.in, id)

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVerticesLocked()
}

func (g *Graph) sortedVerticesLocked() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of incoming and outgoing entries of id.
// An undirected edge contributes one to each; a self-loop counts in both.
func (g *Graph) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	for _, c := range g.in[id] {
		in += c
	}

	return in, len(g.out[id]), nil
}
