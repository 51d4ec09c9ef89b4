// SPDX-License-Identifier: MIT
// Package: sumcolouring/graph
//
// types.go - Graph, Edge and sentinel errors.
//
// Contract:
//   - Vertices are numbered 1..V; V ≥ 0.
//   - Edges are undirected, stored as (min(u,v), max(u,v)), de-duplicated and
//     sorted lexicographically (U asc, then V asc).
//   - A Graph is immutable after NewGraph returns; every accessor returns a copy
//     or a value, so a *Graph may be shared between goroutines without locks.

package graph

import "errors"

// Sentinel errors for graph construction and colouring validation.
var (
	// ErrNegativeVertices indicates a negative vertex count.
	ErrNegativeVertices = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside 1..V.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge (v,v); sum colouring has no valid answer for it.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrColouringLength indicates a colouring whose length differs from V.
	ErrColouringLength = errors.New("graph: colouring length mismatch")

	// ErrColourOutOfRange indicates a colour outside [1, maxColours].
	ErrColourOutOfRange = errors.New("graph: colour out of range")

	// ErrConflict indicates two adjacent vertices sharing a colour.
	ErrConflict = errors.New("graph: adjacent vertices share a colour")
)

// Edge is an undirected edge with U < V.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected simple graph over vertices 1..V.
type Graph struct {
	vertices int
	edges    []Edge // sorted, unique, U<V

	// adjacency[v-1] lists neighbours of v in ascending order.
	adjacency [][]int
}
