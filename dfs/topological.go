package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	state map[int]int // visitation state: White, Gray, Black
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a linear ordering of all vertices in g such that
// for every edge entry u→v, u appears before v.
//
// Every stored entry is treated as directed, so an undirected edge (two
// symmetric entries) or a self-loop makes the graph cyclic. Vertices are
// started in ascending ID order and neighbors are explored in ascending
// order, so the result is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[int]int, len(verts)),
		order: make([]int, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id int) error {
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	nbrs, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nid := range nbrs {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
