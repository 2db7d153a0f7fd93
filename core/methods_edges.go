// File: methods_edges.go
// Role: Edge lifecycle (add/remove, directed and undirected) and the in-counter bookkeeping.
//
// Invariants:
//   - out[u] is sorted by To; parallel entries keep insertion order (stable insert).
//   - in[v][u] equals the number of entries u→v held in out[u].
//   - edgeCnt equals Σ len(out[u]).
//
// Every mutator validates all inputs before touching state, so a failed call
// leaves the graph unchanged.
package core

import (
	"fmt"
	"slices"
	"sort"
)

// AddEdge inserts one directed entry from→to with the given weight.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is missing.
//   - ErrMultiEdgeNotAllowed if from→to already exists and multi-edges are disabled.
//
// Complexity: O(deg(from)) for the sorted insert.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}
	g.insertLocked(from, to, weight)

	return nil
}

// AddUndirectedEdge inserts the symmetric pair from→to and to→from.
// A self-loop (from == to) is stored as a single entry.
//
// The call is atomic: when either direction would be rejected, nothing is inserted.
func (g *Graph) AddUndirectedEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	if !g.allowMulti {
		if g.hasEdgeLocked(from, to) {
			return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
		}
		if g.hasEdgeLocked(to, from) {
			return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, to, from)
		}
	}

	g.insertLocked(from, to, weight)
	if from != to {
		g.insertLocked(to, from, weight)
	}

	return nil
}

// RemoveEdge deletes one entry from→to (the earliest inserted when parallel entries exist).
// Returns ErrVertexNotFound for a missing endpoint and ErrEdgeNotFound when no entry exists.
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	if !g.removeLocked(from, to) {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return nil
}

// RemoveUndirectedEdge deletes one entry in each direction between a and b.
// Both entries must exist; otherwise ErrEdgeNotFound is returned and nothing changes.
func (g *Graph) RemoveUndirectedEdge(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(a, b); err != nil {
		return err
	}
	if !g.hasEdgeLocked(a, b) || !g.hasEdgeLocked(b, a) {
		return fmt.Errorf("%w: %d—%d", ErrEdgeNotFound, a, b)
	}
	g.removeLocked(a, b)
	if a != b {
		g.removeLocked(b, a)
	}

	return nil
}

// HasEdge reports whether at least one entry from→to exists. O(log deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Weight returns the weight of the earliest from→to entry.
func (g *Graph) Weight(from, to int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.out[from]
	i := lowerBound(bucket, to)
	if i == len(bucket) || bucket[i].To != to {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return bucket[i].Weight, nil
}

// Edges returns every stored entry sorted by (From, To); parallel entries keep insertion order.
// Complexity: O(V·log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCnt)
	for _, u := range g.sortedVerticesLocked() {
		out = append(out, g.out[u]...)
	}

	return out
}

// EdgeCount returns the number of stored directed entries. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCnt
}

// Internal helper methods:
////////////////////

func (g *Graph) checkEndpointsLocked(from, to int) error {
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	return nil
}

func (g *Graph) hasEdgeLocked(from, to int) bool {
	return g.in[to][from] > 0
}

// insertLocked places from→to after any existing entries with the same To.
func (g *Graph) insertLocked(from, to int, weight float64) {
	bucket := g.out[from]
	i := sort.Search(len(bucket), func(k int) bool { return bucket[k].To > to })
	g.out[from] = slices.Insert(bucket, i, Edge{From: from, To: to, Weight: weight})

	if g.in[to] == nil {
		g.in[to] = make(map[int]int)
	}
	g.in[to][from]++
	g.edgeCnt++
}

// removeLocked deletes the first from→to entry and reports whether one existed.
func (g *Graph) removeLocked(from, to int) bool {
	bucket := g.out[from]
	i := lowerBound(bucket, to)
	if i == len(bucket) || bucket[i].To != to {
		return false
	}
	g.out[from] = slices.Delete(bucket, i, i+1)
	if len(g.out[from]) == 0 {
		delete(g.out, from)
	}
	g.decIn(to, from)
	g.edgeCnt--

	return true
}

// decIn drops one u→v occurrence from the in-counters.
func (g *Graph) decIn(v, u int) {
	m := g.in[v]
	if m == nil {
		return
	}
	m[u]--
	if m[u] <= 0 {
		delete(m, u)
	}
	if len(m) == 0 {
		delete(g.in, v)
	}
}

// lowerBound returns the index of the first entry with To >= to.
func lowerBound(bucket []Edge, to int) int {
	return sort.Search(len(bucket), func(k int) bool { return bucket[k].To >= to })
}
