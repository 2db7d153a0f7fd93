// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_binary_tree.go - BinaryTree(depth) constructor.
//
// Contract:
//   • 1 ≤ depth ≤ 20 (ErrTooFewVertices / ErrTooManyVertices).
//   • Vertex k links to 2k+1 and 2k+2.
//
// Complexity:
//   • Time O(2^depth), Space O(2^depth) for the id slice.

package builder

import "github.com/katalvlaran/lvds/core"

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 20 // 2^20-1 vertices, within MaxVertices
)

// BinaryTree builds a complete binary tree with 2^depth-1 vertices; vertex
// k has children 2k+1 and 2k+2, and edges run parent→child.
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if depth < minTreeDepth {
			return tooFew(methodBinaryTree, "depth", depth, minTreeDepth)
		}
		if depth > maxTreeDepth {
			return tooMany(methodBinaryTree, "depth", depth, maxTreeDepth)
		}
		n := 1<<depth - 1
		ids := addVertices(g, n)
		for k := 0; 2*k+1 < n; k++ {
			for _, child := range [2]int{2*k + 1, 2*k + 2} {
				if err := cfg.link(g, methodBinaryTree, ids[k], ids[child]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
