// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 and rows·cols ≤ MaxVertices, checked without overflow.
//   • Each cell links right, then down.
//
// Determinism:
//   • Row-major vertex order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighbourhood lattice. Cell (r,c) is vertex
// r*cols+c; each cell links right, then down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		if rows > MaxVertices/cols {
			return fmt.Errorf("%s: rows=%d cols=%d > max=%d vertices: %w",
				methodGrid, rows, cols, MaxVertices, ErrTooManyVertices)
		}
		ids := addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				k := r*cols + c
				if c+1 < cols {
					if err := cfg.link(g, methodGrid, ids[k], ids[k+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(g, methodGrid, ids[k], ids[k+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
