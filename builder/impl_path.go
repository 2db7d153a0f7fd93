// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • 2 ≤ n ≤ MaxVertices; edges k-1→k.

package builder

import "github.com/katalvlaran/lvds/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n with edges k-1→k for k = 1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if n > MaxVertices {
			return tooMany(methodPath, "n", n, MaxVertices)
		}
		ids := addVertices(g, n)
		for k := 1; k < n; k++ {
			if err := cfg.link(g, methodPath, ids[k-1], ids[k]); err != nil {
				return err
			}
		}

		return nil
	}
}
