package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvds/bfs"
	"github.com/katalvlaran/lvds/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Vertex i*3+j is cell (i,j); the start is the top-left corner.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph(core.WithVertices(9))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			id := i*3 + j
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddUndirectedEdge(id, id+1, 1)
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddUndirectedEdge(id, id+3, 1)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Visit order follows non-decreasing Manhattan distance.
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleBFSResult_PathTo finds the fewest-hop route in a small network.
// Two competing routes exist from 0 to 6: 0-1-2-3-6 (4 hops) and 0-4-5-6 (3 hops).
func ExampleBFSResult_PathTo() {
	g := core.NewGraph(core.WithVertices(7))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 6}, {0, 4}, {4, 5}, {5, 6}} {
		_ = g.AddUndirectedEdge(e[0], e[1], 1)
	}

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(6)
	fmt.Println("path:", path, "hops:", res.Depth[6])
	// Output:
	// path: [0 4 5 6] hops: 3
}
