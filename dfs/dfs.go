package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvds/core"
)

// frame is a pending visit on the explicit stack.
type frame struct {
	id     int
	parent int
	depth  int
	root   bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph       // underlying graph
	opts  DFSOptions        // traversal options
	stack *arraystack.Stack // LIFO of frame
	res   *DFSResult        // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
//
// The traversal pops a vertex, skips it if already visited, visits it, and then
// pushes its unvisited neighbors in descending ID order so that the lowest ID
// is explored first. Order is therefore a pre-order.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		stack: arraystack.New(),
		res: &DFSResult{
			Order:   make([]int, 0, len(vertices)),
			Depth:   make(map[int]int, len(vertices)),
			Parent:  make(map[int]int, len(vertices)),
			Visited: make(map[int]bool, len(vertices)),
		},
	}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return w.res, w.run(startID)
	}
	for _, v := range vertices {
		if w.res.Visited[v] {
			continue
		}
		if err := w.run(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// run drains the stack starting from root.
func (w *dfsWalker) run(root int) error {
	w.stack.Push(frame{id: root, root: true})
	for !w.stack.Empty() {
		v, _ := w.stack.Pop()
		f := v.(frame)
		if w.res.Visited[f.id] {
			continue
		}
		if err := w.visit(f); err != nil {
			w.stack.Clear()
			return err
		}
		if err := w.pushNeighbors(f); err != nil {
			w.stack.Clear()
			return err
		}
	}

	return nil
}

// visit marks f.id visited and records order, depth and parent.
func (w *dfsWalker) visit(f frame) error {
	w.res.Visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if !f.root {
		w.res.Parent[f.id] = f.parent
	}
	w.res.Order = append(w.res.Order, f.id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.id, f.depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", f.id, err)
		}
	}

	return nil
}

// pushNeighbors pushes unvisited neighbors of f.id, highest ID first.
func (w *dfsWalker) pushNeighbors(f frame) error {
	if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.graph.NeighborIDs(f.id)
	if err != nil {
		return fmt.Errorf("%w: %d: %v", ErrNeighborFetch, f.id, err)
	}
	for i := len(nbrs) - 1; i >= 0; i-- {
		nid := nbrs[i]
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, nid) {
			w.res.SkippedNeighbors++
			continue
		}
		w.stack.Push(frame{id: nid, parent: f.id, depth: f.depth + 1})
	}

	return nil
}
