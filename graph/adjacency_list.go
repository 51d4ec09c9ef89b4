package graph

import (
	"fmt"
	"sort"
)

// NewGraph builds a Graph over vertices 1..vertices from the given edges.
// Edge orientation is normalised to (min,max) and duplicates are merged.
//
// Errors: ErrNegativeVertices, ErrVertexOutOfRange, ErrSelfLoop.
// Complexity: O(E log E) for sorting plus O(V+E) for adjacency.
func NewGraph(vertices int, edges ...Edge) (*Graph, error) {
	if vertices < 0 {
		return nil, fmt.Errorf("NewGraph: V=%d: %w", vertices, ErrNegativeVertices)
	}

	seen := make(map[Edge]struct{}, len(edges))
	norm := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U < 1 || e.U > vertices || e.V < 1 || e.V > vertices {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d) with V=%d: %w", e.U, e.V, vertices, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d): %w", e.U, e.V, ErrSelfLoop)
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		norm = append(norm, e)
	}
	sort.Slice(norm, func(i, j int) bool {
		if norm[i].U != norm[j].U {
			return norm[i].U < norm[j].U
		}
		return norm[i].V < norm[j].V
	})

	g := &Graph{
		vertices:  vertices,
		edges:     norm,
		adjacency: make([][]int, vertices),
	}
	// Edges are sorted by (U,V) so appending keeps each list ascending
	// for the U side; the V side is sorted once below.
	for _, e := range norm {
		g.adjacency[e.U-1] = append(g.adjacency[e.U-1], e.V)
		g.adjacency[e.V-1] = append(g.adjacency[e.V-1], e.U)
	}
	for i := range g.adjacency {
		sort.Ints(g.adjacency[i])
	}

	return g, nil
}

// MustGraph is NewGraph that panics on error. Intended for fixtures and examples.
func MustGraph(vertices int, edges ...Edge) *Graph {
	g, err := NewGraph(vertices, edges...)
	if err != nil {
		panic(err)
	}
	return g
}

// Vertices returns V.
func (g *Graph) Vertices() int { return g.vertices }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the sorted edge list.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// HasEdge reports whether u and v are adjacent (order-insensitive).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 1 || u > g.vertices || v < 1 || v > g.vertices {
		return false
	}
	nbrs := g.adjacency[u-1]
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v
}

// Neighbours returns a copy of v's neighbours in ascending order,
// or nil if v is out of range.
func (g *Graph) Neighbours(v int) []int {
	if v < 1 || v > g.vertices {
		return nil
	}
	out := make([]int, len(g.adjacency[v-1]))
	copy(out, g.adjacency[v-1])
	return out
}

// Degree returns the number of neighbours of v (0 if out of range).
func (g *Graph) Degree(v int) int {
	if v < 1 || v > g.vertices {
		return 0
	}
	return len(g.adjacency[v-1])
}

// MaxDegree returns the largest vertex degree (0 for an edgeless or empty graph).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nbrs := range g.adjacency {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}
	return best
}

// MaxColours returns the colour bound max(degree)+1 used by every solver.
// A graph without vertices needs no colours and yields 0.
func MaxColours(g *Graph) int {
	if g == nil || g.vertices == 0 {
		return 0
	}
	return g.MaxDegree() + 1
}
