// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • 2 ≤ n ≤ MaxVertices; center 0 links to every leaf.

package builder

import "github.com/katalvlaran/lvds/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a center (vertex 0) with edges to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if n > MaxVertices {
			return tooMany(methodStar, "n", n, MaxVertices)
		}
		ids := addVertices(g, n)
		for k := 1; k < n; k++ {
			if err := cfg.link(g, methodStar, ids[0], ids[k]); err != nil {
				return err
			}
		}

		return nil
	}
}
