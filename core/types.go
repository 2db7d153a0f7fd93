// Package core defines the Graph and Edge types and the thread-safe
// primitives for building and querying weighted graphs with integer vertex ids.
//
// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrMultiEdgeNotAllowed - parallel from→to entry when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one directed adjacency entry From→To with a Weight.
//
// An undirected edge is stored as two symmetric entries (From→To and To→From);
// an undirected self-loop is stored once.
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the cost of traversing the entry.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal maps for about n vertices.
// It is a hint only; no vertex is created. Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// WithVertices creates vertices 0..n-1 at construction time.
// Negative values are ignored.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.initial = n
		}
	}
}

// WithMultiEdges permits parallel entries between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory weighted graph.
//
// Vertex ids are issued by AddVertex in increasing order and are never reused,
// so ids stay stable when other vertices are removed.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool // allow parallel edges
	capHint    int  // map sizing hint
	initial    int  // vertices created by NewGraph

	nextID   int              // next vertex ID to issue
	vertices map[int]struct{} // vertex set
	edgeCnt  int              // number of stored entries

	// out[u] holds u's entries sorted by To; parallel entries keep insertion order.
	out map[int][]Edge
	// in[v][u] counts entries u→v, so RemoveVertex only touches real predecessors.
	in map[int]map[int]int
}

// NewGraph creates a Graph with the given options.
// By default the graph is empty and rejects parallel edges; self-loops are allowed.
// Complexity: O(n) for WithVertices(n), O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	hint := g.capHint
	if g.initial > hint {
		hint = g.initial
	}
	g.vertices = make(map[int]struct{}, hint)
	g.out = make(map[int][]Edge, hint)
	g.in = make(map[int]map[int]int, hint)

	for i := 0; i < g.initial; i++ {
		g.addVertexLocked()
	}

	return g
}
