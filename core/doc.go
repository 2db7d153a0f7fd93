// Package core provides the thread-safe in-memory weighted Graph used by the
// traversal and path packages (bfs, dfs, dijkstra, prim_kruskal).
//
// The Graph G = (V,E) stores:
//
//   - Vertices as integer IDs issued by AddVertex (0, 1, 2, …), never reused.
//   - Edges as directed entries (From, To, Weight). An undirected edge is two
//     symmetric entries; an undirected self-loop is one entry.
//   - Adjacency as out[from] = entries sorted by To, plus an in-counter
//     in[to][from] so vertex removal only visits real predecessors.
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() are sorted.
//   - Cascading removal: RemoveVertex drops every incident entry.
//   - All-or-nothing mutation: a rejected call leaves the graph unchanged.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n)   map sizing hint
//	– WithVertices(n)   create vertices 0..n-1 up front
//	– WithMultiEdges()  allow parallel entries; otherwise ErrMultiEdgeNotAllowed
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                              // O(1)
//	HasVertex(id int) bool                       // O(1)
//	RemoveVertex(id int) error                   // O(deg + Σ deg(pred))
//
//	// Edge lifecycle
//	AddEdge(from, to int, w float64) error            // O(deg(from))
//	AddUndirectedEdge(from, to int, w float64) error  // O(deg(from)+deg(to))
//	RemoveEdge(from, to int) error                    // O(deg(from))
//	RemoveUndirectedEdge(a, b int) error
//	HasEdge(from, to int) bool                        // O(1)
//
//	// Query
//	Neighbors(id int) ([]Edge, error)    // sorted by To
//	NeighborIDs(id int) ([]int, error)   // distinct, ascending
//	InNeighbors(id int) ([]Edge, error)  // sorted by From
//	Vertices() []int / Edges() []Edge / VertexCount() / EdgeCount()
//
//	// Maintenance
//	Clone() *Graph / Clear()
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrMultiEdgeNotAllowed – parallel entry when multi-edges disabled
//
// Concurrency: a single sync.RWMutex per Graph guards all state.
package core
