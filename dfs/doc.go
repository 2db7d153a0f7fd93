// Package dfs implements depth-first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, using an explicit stack rather than
//     recursion. Supports:
//   - Pre-order hook (OnVisit)
//   - Depth limiting: WithMaxDepth(0) visits only the start vertex and
//     the default (-1) means no limit. bfs.WithMaxDepth(0) instead means
//     no limit.
//   - Neighbor filtering
//   - Forest traversal over every component (WithFullTraversal)
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Why:
//   - Reachability and component discovery
//   - Determine safe execution orders in DAGs
//   - Provide a foundation for SCC detection, connectivity, and pathfinding
//
// Determinism:
//
//	Unvisited neighbors are pushed in descending ID order, so the lowest ID
//	is popped and explored first. For a fixed graph and start vertex the
//	visit order is always the same.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V+E) (a vertex may sit on the stack more than once)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrOptionViolation      negative MaxDepth
//   - ErrCycleDetected        cycle discovered during TopologicalSort
//   - hook errors             propagated from OnVisit
//
// Functions:
//
//   - DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error)
//   - TopologicalSort(g *core.Graph) ([]int, error)
//   - DefaultOptions(), WithOnVisit(), WithMaxDepth(), WithFilterNeighbor(),
//     WithFullTraversal()
package dfs
