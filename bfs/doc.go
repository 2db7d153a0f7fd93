// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//     Note that dfs.WithMaxDepth(0) differs: there it visits only the start
//     vertex, and "no limit" is the dfs default of -1.
//
// Determinism
//
//	core.Graph.NeighborIDs returns distinct neighbor IDs in ascending order,
//	and BFS enqueues them in that order, so the visit sequence is fully
//	reproducible. Parallel edges and self-loops never enqueue a vertex twice.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(5)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.NeighborIDs fails for any vertex.
//   - ErrNoPath               from PathTo when the target was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
