// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order, each constructor on a fresh block of vertices (disjoint union).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/lychanl/SumColouring/graph"
)

// Constructor appends one topology to the canvas using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// canvas, reserve their vertices with canvas.block and emit edges in a stable
// documented order.
type Constructor func(c *Canvas, cfg builderConfig) error

// Canvas accumulates vertices and edges across constructors. Vertex numbers
// are 1-based and global to the canvas.
type Canvas struct {
	vertices int
	edges    []graph.Edge
}

// block reserves n new vertices and returns the offset to add to the
// constructor-local numbers 1..n.
func (c *Canvas) block(n int) int {
	off := c.vertices
	c.vertices += n
	return off
}

// edge records an edge between two global vertex numbers.
func (c *Canvas) edge(u, v int) {
	c.edges = append(c.edges, graph.Edge{U: u, V: v})
}

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. Each constructor gets its own vertex block, so the
// result is the disjoint union of the requested topologies. Any constructor
// error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(E log E) for the
// final normalisation in graph.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	canvas := &Canvas{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(canvas, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.permute {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: permuted labels: %w", ErrNeedRandSource)
		}
		relabel(canvas, cfg.rng.Perm(canvas.vertices))
	}

	g, err := graph.NewGraph(canvas.vertices, canvas.edges...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %v", ErrConstructFailed, err)
	}
	return g, nil
}

// relabel maps vertex v to perm[v-1]+1.
func relabel(c *Canvas, perm []int) {
	for i, e := range c.edges {
		c.edges[i] = graph.Edge{U: perm[e.U-1] + 1, V: perm[e.V-1] + 1}
	}
}
