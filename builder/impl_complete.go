// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • 1 ≤ n ≤ MaxDenseVertices.
//   • Directed builds emit both i→j and j→i.
//
// Complexity:
//   • Time O(n²).

package builder

import "github.com/katalvlaran/lvds/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n. Pairs are visited i<j in row order; a directed
// build adds both i→j and j→i.
//
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		if n > MaxDenseVertices {
			return tooMany(methodComplete, "n", n, MaxDenseVertices)
		}
		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if cfg.undirected {
					continue
				}
				if err := cfg.link(g, methodComplete, ids[j], ids[i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
