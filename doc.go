// Package lvds is an in-memory collection of classic data structures and
// graph algorithms, each small enough to read in one sitting and exposed
// through deterministic results that are easy to draw or replay.
//
// What is inside:
//
//	avl/           self-balancing binary search tree of int keys
//	binheap/       binary min- or max-heap over any ordered type
//	hashtable/     fixed-size open addressing, linear probing, tombstones
//	linkedlist/    doubly linked list, O(1) at both ends
//	core/          thread-safe weighted graph with stable int vertex ids
//	bfs/, dfs/     traversals with hooks, depth limits and filters
//	dijkstra/      single-source shortest paths, lowest-id tie-break
//	prim_kruskal/  minimum spanning trees and forests
//	builder/       deterministic graph fixtures (path, grid, random, …)
//	bridge/        handle-based procedural surface over all of the above
//	cmd/dsctl      script runner on top of bridge
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g := core.NewGraph(core.WithVertices(4))
//	_ = g.AddUndirectedEdge(0, 1, 1)
//	_ = g.AddUndirectedEdge(1, 2, 1)
//	_ = g.AddUndirectedEdge(2, 3, 1)
//	_ = g.AddUndirectedEdge(3, 0, 1)
//	res, _ := bfs.BFS(g, 0) // res.Order == [0 1 3 2]
//
// Structures other than core.Graph are single-owner: callers serialize
// access, or go through bridge.Registry which locks per handle.
package lvds
