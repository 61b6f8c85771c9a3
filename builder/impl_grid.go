// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex ids "r,c" in row-major order; idFn is not consulted.
//   - For each cell: right neighbor first, then the one below.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				MethodGrid, rows, cols, MinGridDim)
		}

		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				c.addVertex(fmt.Sprintf(gridIDFmt, r, col))
			}
		}
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				u := fmt.Sprintf(gridIDFmt, r, col)
				if col+1 < cols {
					v := fmt.Sprintf(gridIDFmt, r, col+1)
					if err := c.addEdge(u, v); err != nil {
						return wrapEdge(err, MethodGrid, u, v)
					}
				}
				if r+1 < rows {
					v := fmt.Sprintf(gridIDFmt, r+1, col)
					if err := c.addEdge(u, v); err != nil {
						return wrapEdge(err, MethodGrid, u, v)
					}
				}
			}
		}

		return nil
	}
}
