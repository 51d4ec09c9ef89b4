package graph

import (
	"fmt"
	"sort"
)

// Component is one connected component: its vertices (ascending, original
// numbering) and the induced subgraph renumbered 1..len(Vertices).
type Component struct {
	// Vertices[k] is the original id of subgraph vertex k+1.
	Vertices []int
	Graph    *Graph
}

// Components splits g into connected components using breadth-first search.
// Components are ordered by their smallest vertex; within a component the
// vertex order is ascending, so the renumbering is deterministic.
// An isolated vertex forms its own single-vertex component.
//
// Complexity: O(V + E).
func Components(g *Graph) []Component {
	if g == nil || g.vertices == 0 {
		return nil
	}

	comp := make([]int, g.vertices) // 0 = unvisited, otherwise component index+1
	queue := make([]int, 0, g.vertices)
	var groups [][]int

	for start := 1; start <= g.vertices; start++ {
		if comp[start-1] != 0 {
			continue
		}
		id := len(groups) + 1
		comp[start-1] = id
		queue = append(queue[:0], start)
		members := []int{start}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range g.adjacency[u-1] {
				if comp[v-1] != 0 {
					continue
				}
				comp[v-1] = id
				queue = append(queue, v)
				members = append(members, v)
			}
		}
		sort.Ints(members)
		groups = append(groups, members)
	}

	out := make([]Component, 0, len(groups))
	for _, members := range groups {
		sub, err := Induced(g, members)
		if err != nil {
			// members come from g itself, so this cannot happen.
			panic(err)
		}
		out = append(out, Component{Vertices: members, Graph: sub})
	}

	return out
}

// Induced returns the subgraph of g induced by vertices, renumbered so that
// vertices[k] becomes k+1. vertices must be distinct and within 1..V.
func Induced(g *Graph, vertices []int) (*Graph, error) {
	index := make(map[int]int, len(vertices))
	for k, v := range vertices {
		if v < 1 || v > g.vertices {
			return nil, fmt.Errorf("Induced: vertex %d with V=%d: %w", v, g.vertices, ErrVertexOutOfRange)
		}
		index[v] = k + 1
	}

	var edges []Edge
	for _, e := range g.edges {
		a, okA := index[e.U]
		b, okB := index[e.V]
		if okA && okB {
			edges = append(edges, Edge{U: a, V: b})
		}
	}

	return NewGraph(len(vertices), edges...)
}
