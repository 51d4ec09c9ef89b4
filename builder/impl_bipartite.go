// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is 1..n1, right side is n1+1..n1+n2.
//   • Edges (i, n1+j) emitted i asc, then j asc.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validatePartition(methodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		off := c.block(n1 + n2)
		for i := 1; i <= n1; i++ {
			for j := 1; j <= n2; j++ {
				c.edge(off+i, off+n1+j)
			}
		}

		return nil
	}
}
