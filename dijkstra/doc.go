// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (container/heap) to always expand the next-closest vertex,
//     using a “lazy decrease-key” strategy: improved distances are pushed again and
//     stale entries are skipped when popped.
//   - Edge entries are followed in their stored direction; an undirected edge added
//     with core.Graph.AddUndirectedEdge is walkable both ways.
//
// Determinism:
//
//   - Among vertices with equal tentative distance, the lowest vertex ID is settled first.
//   - A predecessor is replaced only by a strictly shorter path, so the first
//     shortest path discovered in settle order is the one reported.
//
// Key features:
//
//   - Result.Dist holds every vertex of the graph; unreachable ones map to math.Inf(1).
//   - Result.Prev and Result.PathTo rebuild each shortest path.
//   - Result.Order records the settle sequence, useful for step-by-step display.
//   - WithMaxDistance: stops exploration beyond a specified distance.
//   - WithInfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option was supplied.
//   - ErrNilGraph:        the *core.Graph is nil.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//   - ErrNegativeWeight:  some edge has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance was given a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold was given zero or a negative value.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo(5)
//
// Thread safety:
//
//   - Each core.Graph accessor takes the graph's read lock, but Dijkstra makes many
//     such calls; synchronize externally if the graph is mutated concurrently.
package dijkstra
