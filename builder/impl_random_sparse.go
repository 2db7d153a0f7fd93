// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Contract:
//   • 1 ≤ n ≤ MaxDenseVertices, p ∈ [0,1], rng required.
//
// Determinism:
//   • Trials run i ascending, then j ascending, drawing from cfg.rng only.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse samples each candidate edge independently with probability
// p: ordered pairs i≠j for a directed build, pairs i<j when undirected.
// Trials run i ascending, then j ascending, so a fixed seed gives a fixed
// graph.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if n > MaxDenseVertices {
			return tooMany(methodRandomSparse, "n", n, MaxDenseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			j := 0
			if cfg.undirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.link(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
