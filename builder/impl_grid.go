// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c), 0-based, is numbered r*cols + c + 1 (row-major).
//   • For each cell in row-major order emit Right then Bottom where present.
//
// Complexity: O(rows*cols).

package builder

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		off := c.block(rows * cols)
		id := func(r, col int) int { return off + r*cols + col + 1 }
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				if col+1 < cols {
					c.edge(id(r, col), id(r, col+1))
				}
				if r+1 < rows {
					c.edge(id(r, col), id(r+1, col))
				}
			}
		}

		return nil
	}
}
