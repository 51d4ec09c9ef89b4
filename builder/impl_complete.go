// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices 1..n; edges (i,j) for i<j emitted i asc, then j asc.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		off := c.block(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				c.edge(off+i, off+j)
			}
		}

		return nil
	}
}
