// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_mycielski.go: implementation of Mycielski(k) constructor.
//
// Canonical model:
//   • M_2 = K_2. M_{k+1} is built from M_k (V vertices, edge set E) by adding
//     a shadow u' = u+V for every vertex u and an apex 2V+1; for every edge
//     (u,w) ∈ E add (u,w') and (w,u'); join every shadow to the apex.
//   • M_k is triangle-free with chromatic number k.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices).
//   • Vertex counts: 2, 5, 11, 23, ... (V_{k+1} = 2·V_k + 1).
//   • Edge order: edges of M_k first, then per old edge (u,w') and (w,u'),
//     then shadow→apex spokes.
//
// Complexity: O(3^k) edges, O(2^k) vertices.

package builder

import "github.com/lychanl/SumColouring/graph"

// Mycielski returns a Constructor that builds the Mycielski graph M_k.
func Mycielski(k int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodMycielski, "k", k, MinMycielskiOrder); err != nil {
			return err
		}

		v, edges := mycielski(k)
		off := c.block(v)
		for _, e := range edges {
			c.edge(off+e.U, off+e.V)
		}

		return nil
	}
}

// mycielski returns the vertex count and edges of M_k, k ≥ 2.
func mycielski(k int) (int, []graph.Edge) {
	v := 2
	edges := []graph.Edge{{U: 1, V: 2}}
	for order := 2; order < k; order++ {
		next := make([]graph.Edge, 0, 3*len(edges)+v)
		next = append(next, edges...)
		for _, e := range edges {
			next = append(next,
				graph.Edge{U: e.U, V: e.V + v},
				graph.Edge{U: e.V, V: e.U + v},
			)
		}
		apex := 2*v + 1
		for u := 1; u <= v; u++ {
			next = append(next, graph.Edge{U: u + v, V: apex})
		}
		v, edges = apex, next
	}

	return v, edges
}
