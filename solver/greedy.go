package solver

import "github.com/lychanl/SumColouring/graph"

// greedyColouring colours greedy independent sets, one colour per round.
//
// In round c the candidates are all still uncoloured vertices. While any
// remain, the candidate with the fewest neighbours among the candidates
// (lowest number on ties) gets colour c, and it and its candidate neighbours
// leave the round; the neighbours wait for round c+1. The result is valid
// but not necessarily optimal.
//
// Complexity: O(V·(V+E)) per round in the worst case.
func greedyColouring(g *graph.Graph, _ Options) ([]int, error) {
	n := g.Vertices()
	colouring := make([]int, n)
	uncoloured := n

	candidate := make([]bool, n+1)
	adj := make([][]int, n+1)
	for v := 1; v <= n; v++ {
		adj[v] = g.Neighbours(v)
	}

	for c := 1; uncoloured > 0; c++ {
		left := 0
		for v := 1; v <= n; v++ {
			candidate[v] = colouring[v-1] == 0
			if candidate[v] {
				left++
			}
		}

		for left > 0 {
			pick, fewest := 0, n
			for v := 1; v <= n; v++ {
				if !candidate[v] {
					continue
				}
				deg := 0
				for _, u := range adj[v] {
					if candidate[u] {
						deg++
					}
				}
				if pick == 0 || deg < fewest {
					pick, fewest = v, deg
				}
			}

			colouring[pick-1] = c
			uncoloured--
			candidate[pick] = false
			left--
			for _, u := range adj[pick] {
				if candidate[u] {
					candidate[u] = false
					left--
				}
			}
		}
	}

	return colouring, nil
}
