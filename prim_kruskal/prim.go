package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

// Prim grows a minimum spanning tree from a root vertex using a min-heap of
// candidate edges crossing the boundary between reached and unreached vertices.
//
// The root defaults to the lowest vertex ID (override with WithRoot). Only
// outgoing entries are crossed unless WithIgnoreDirection is set; an
// undirected edge is stored as two entries, so it is crossable both ways.
// Ties between candidates break by lower weight, then lower new vertex,
// then lower reached endpoint. When both stored entries of an undirected
// edge compete, the one leaving the tree (reached→new) is reported.
//
// A disconnected graph is not an error: Prim returns the tree of the
// root's component with Spanning == false and Reached listing only the
// vertices it reached.
//
// Error Conditions:
//   - ErrNilGraph     : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
//   - ErrRootNotFound : the requested root does not exist.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (*MST, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	root := vertices[0]
	if cfg.hasRoot {
		if !graph.HasVertex(cfg.Root) {
			return nil, fmt.Errorf("%w: %d", ErrRootNotFound, cfg.Root)
		}
		root = cfg.Root
	}

	p := &primRunner{
		graph:   graph,
		ignore:  cfg.IgnoreDirection,
		visited: make(map[int]bool, len(vertices)),
		pq:      &edgePQ{},
		res: &MST{
			Root:    root,
			Edges:   make([]core.Edge, 0, len(vertices)-1),
			Reached: make([]int, 0, len(vertices)),
		},
	}
	heap.Init(p.pq)
	if err := p.reach(root); err != nil {
		return nil, err
	}

	n := len(vertices)
	for p.pq.Len() > 0 && len(p.res.Reached) < n {
		c := heap.Pop(p.pq).(candidate)
		if p.visited[c.to] {
			continue
		}
		p.res.Edges = append(p.res.Edges, c.edge)
		p.res.Total += c.edge.Weight
		if err := p.reach(c.to); err != nil {
			return nil, err
		}
	}
	p.res.Spanning = len(p.res.Reached) == n

	return p.res, nil
}

// primRunner holds the mutable state of one Prim execution.
type primRunner struct {
	graph   *core.Graph
	ignore  bool
	visited map[int]bool
	pq      *edgePQ
	res     *MST
}

// reach adds v to the tree and pushes every edge from v to an unreached vertex.
func (p *primRunner) reach(v int) error {
	p.visited[v] = true
	p.res.Reached = append(p.res.Reached, v)

	out, err := p.graph.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range out {
		if !p.visited[e.To] {
			heap.Push(p.pq, candidate{edge: e, from: v, to: e.To, forward: true})
		}
	}
	if !p.ignore {
		return nil
	}
	in, err := p.graph.InNeighbors(v)
	if err != nil {
		return err
	}
	for _, e := range in {
		if !p.visited[e.From] {
			heap.Push(p.pq, candidate{edge: e, from: v, to: e.From})
		}
	}

	return nil
}

// candidate is a boundary edge: from is inside the tree, to is outside.
// edge keeps the entry as stored; forward reports whether it runs from→to.
type candidate struct {
	edge     core.Edge
	from, to int
	forward  bool
}

// edgePQ implements heap.Interface for a min-heap of candidates.
type edgePQ []candidate

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by the vertex being added, then by the tree
// endpoint, then forward entries first.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	if a.to != b.to {
		return a.to < b.to
	}

	if a.from != b.from {
		return a.from < b.from
	}

	return a.forward && !b.forward
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
