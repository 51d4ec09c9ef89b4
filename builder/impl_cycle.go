// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices 1..n; edges i → i%n+1 for i=1..n, closing the ring at n → 1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		off := c.block(n)
		for i := 1; i <= n; i++ {
			c.edge(off+i, off+i%n+1)
		}

		return nil
	}
}
