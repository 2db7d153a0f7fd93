// File: methods_clone.go
// Role: Deep copies and teardown.
package core

import "slices"

// Multigraph reports whether parallel entries are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Clone returns a deep copy: configuration, vertices, entries, and the ID counter.
// The clone issues the same next ID as the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowMulti: g.allowMulti,
		nextID:     g.nextID,
		edgeCnt:    g.edgeCnt,
		vertices:   make(map[int]struct{}, len(g.vertices)),
		out:        make(map[int][]Edge, len(g.out)),
		in:         make(map[int]map[int]int, len(g.in)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for u, bucket := range g.out {
		c.out[u] = slices.Clone(bucket)
	}
	for v, preds := range g.in {
		m := make(map[int]int, len(preds))
		for u, n := range preds {
			m[u] = n
		}
		c.in[v] = m
	}

	return c
}

// Clear releases every vertex and entry and resets the ID counter.
// Configuration flags are preserved, so the graph can be reused.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[int]struct{})
	g.out = make(map[int][]Edge)
	g.in = make(map[int]map[int]int)
	g.edgeCnt = 0
	g.nextID = 0
}
