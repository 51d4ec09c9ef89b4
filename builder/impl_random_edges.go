// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// impl_random_edges.go - implementation of RandomEdges(n, m) constructor.
//
// Canonical model:
//   - Uniform G(n, m): exactly m distinct edges drawn by rejection sampling of
//     ordered pairs (u ≠ v), normalised to (min,max).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   - cfg.rng must be non-nil unless the edge set is forced (m = 0 or
//     m = n(n-1)/2); else ErrNeedRandSource.
//   - Edges are emitted in draw order.
//
// Determinism:
//   - Fixed draw order (u then v per trial) ⇒ identical graphs for a fixed seed.

package builder

import "fmt"

// RandomEdges returns a Constructor that samples a simple graph on n vertices
// with exactly m edges.
func RandomEdges(n, m int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodRandomEdges, "n", n, MinRandomNodes); err != nil {
			return err
		}
		limit := maxSimpleEdges(n)
		if m < 0 || m > limit {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomEdges, m, limit, ErrTooManyEdges)
		}

		// Forced edge sets need no randomness.
		if m == 0 {
			c.block(n)
			return nil
		}
		if m == limit {
			return Complete(n)(c, cfg)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		off := c.block(n)
		type pair struct{ u, v int }
		seen := make(map[pair]struct{}, m)
		for len(seen) < m {
			u := cfg.rng.Intn(n) + 1
			v := cfg.rng.Intn(n-1) + 1
			if v >= u {
				v++
			} else {
				u, v = v, u
			}
			p := pair{u, v}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			c.edge(off+u, off+v)
		}

		return nil
	}
}
