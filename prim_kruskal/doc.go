// Package prim_kruskal computes minimum spanning trees on a weighted *core.Graph
// with two algorithms: Prim’s and Kruskal’s.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with the minimum possible sum of weights.
//
//   - Why MST matters:
//
//   - Network Design: cost-efficient wiring, pipelines, road systems.
//
//   - Clustering: cutting the heaviest MST edges yields clusters.
//
//   - Subroutines: approximation algorithms (Steiner trees, metric TSP).
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (*MST, error)
//
//   - Strategy: grow a single tree from a root (lowest vertex ID unless WithRoot is
//     given), repeatedly taking the cheapest edge that leaves the tree.
//
//   - Ties: lower weight, then lower newly added vertex, then lower tree endpoint.
//
//   - Direction: outgoing entries only; WithIgnoreDirection also crosses incoming
//     entries. Undirected edges are stored as two entries and work either way.
//
//   - Disconnected input: Prim halts with a partial tree, MST.Spanning == false,
//     and MST.Reached lists only the vertices in the root's component.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g *core.Graph) (*MST, error)
//
//   - Strategy: sort every entry by weight (stable over (From, To) order) and join
//     components with union-find (path halving, union by rank).
//
//   - Disconnected input: yields a minimum spanning forest, MST.Spanning == false.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim | MethodKruskal).
//
// Error Conditions
//
//   - ErrNilGraph      graph is nil.
//   - ErrEmptyGraph    graph has no vertices.
//   - ErrRootNotFound  WithRoot names a vertex that does not exist (Prim only).
//   - ErrUnknownMethod Compute was given an unknown method name.
package prim_kruskal
