// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); P_1 is a single isolated vertex.
//   • Vertices 1..n; edges (i, i+1) for i=1..n-1.
//
// Complexity: O(n).

package builder

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		off := c.block(n)
		for i := 1; i < n; i++ {
			c.edge(off+i, off+i+1)
		}

		return nil
	}
}
