package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvds/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g, following edge entries in their stored direction.
//
// Among vertices with equal tentative distance the lowest ID is settled first;
// a predecessor is replaced only by a strictly shorter path.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. A Source must be given (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[int]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[int]float64, len(vertices)),
			Prev:   make(map[int]int, len(vertices)),
			Order:  make([]int, 0, len(vertices)),
		},
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // The input graph; read-only within Dijkstra.
	options Options      // Configuration options (Source, thresholds).
	visited map[int]bool // Tracks if a vertex's distance is finalized.
	pq      nodePQ       // Min-heap of *nodeItem for lazy priority queue.
	res     *Result
}

// init sets dist[v] = +Inf for every vertex and pushes Source=0 into the heap.
func (r *runner) init(vertices []int) {
	for _, v := range vertices {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing entries, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry (lazy decrease-key)
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances of u's out-neighbors.
// Edges with weight ≥ InfEdgeThreshold are skipped as impassable.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.To
		if r.visited[v] {
			continue
		}
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict: an equal-cost path never replaces the recorded predecessor
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by the lower vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
