// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   • 3 ≤ n ≤ MaxVertices; edges k→(k+1) mod n.
//
// Complexity:
//   • Time O(n).

package builder

import "github.com/katalvlaran/lvds/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n with edges k→(k+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if n > MaxVertices {
			return tooMany(methodCycle, "n", n, MaxVertices)
		}
		ids := addVertices(g, n)
		for k := 0; k < n; k++ {
			if err := cfg.link(g, methodCycle, ids[k], ids[(k+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
