// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices), since the rim C_{n-1} needs 3 vertices.
//   • Hub is vertex 1 (as in Star); rim vertices 2..n form a cycle.
//   • Edge order: rim edges first, then spokes in rim order.
//
// Complexity: O(n).

package builder

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		off := c.block(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			c.edge(off+2+i, off+2+(i+1)%rim)
		}
		for v := 2; v <= n; v++ {
			c.edge(off+1, off+v)
		}

		return nil
	}
}
