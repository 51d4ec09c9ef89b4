// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Centre is vertex 1; leaves 2..n, spokes emitted in leaf order.
//
// Complexity: O(n).

package builder

// Star returns a Constructor that builds K_{1,n-1} with the centre at vertex 1.
func Star(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		off := c.block(n)
		for leaf := 2; leaf <= n; leaf++ {
			c.edge(off+1, off+leaf)
		}

		return nil
	}
}
