package solver

import (
	"fmt"

	"github.com/lychanl/SumColouring/graph"
)

// bfSearch is the depth-first enumeration state.
type bfSearch struct {
	n      int
	maxC   int
	lower  [][]int // lower[v]: neighbours of v numbered below v
	ctxErr func() error

	current []int
	sum     int
	best    []int
	bestSum int

	steps int // sparse cancellation checks counter
	err   error
}

// bruteForceColouring enumerates colourings in lexicographic order (vertex 1
// first, colours ascending) and keeps the first one with the smallest sum. A
// branch is pruned when it conflicts with an earlier neighbour, or when its
// partial sum plus one per remaining vertex cannot beat the incumbent.
func bruteForceColouring(g *graph.Graph, o Options) ([]int, error) {
	v := g.Vertices()
	if v > o.BruteForceMaxVertices {
		return nil, fmt.Errorf("bruteforce: V=%d > %d: %w", v, o.BruteForceMaxVertices, ErrTooLarge)
	}

	lower := make([][]int, v+1)
	for u := 1; u <= v; u++ {
		for _, w := range g.Neighbours(u) {
			if w < u {
				lower[u] = append(lower[u], w)
			}
		}
	}

	s := &bfSearch{
		n:       v,
		maxC:    graph.MaxColours(g),
		lower:   lower,
		ctxErr:  o.Ctx.Err,
		current: make([]int, v),
		bestSum: -1,
	}
	s.dfs(1)
	if s.err != nil {
		return nil, fmt.Errorf("bruteforce: %w", s.err)
	}

	return s.best, nil
}

func (s *bfSearch) dfs(vertex int) {
	if s.err != nil {
		return
	}
	s.steps++
	if s.steps&4095 == 0 {
		if err := s.ctxErr(); err != nil {
			s.err = err
			return
		}
	}

	if vertex > s.n {
		if s.bestSum < 0 || s.sum < s.bestSum {
			s.bestSum = s.sum
			s.best = append(s.best[:0], s.current...)
		}
		return
	}

	remaining := s.n - vertex
	for c := 1; c <= s.maxC; c++ {
		if s.bestSum >= 0 && s.sum+c+remaining >= s.bestSum {
			// Larger colours only make it worse.
			return
		}
		if s.conflicts(vertex, c) {
			continue
		}
		s.current[vertex-1] = c
		s.sum += c
		s.dfs(vertex + 1)
		s.sum -= c
		s.current[vertex-1] = 0
	}
}

// conflicts reports whether an already coloured neighbour of vertex uses c.
func (s *bfSearch) conflicts(vertex, c int) bool {
	for _, u := range s.lower[vertex] {
		if s.current[u-1] == c {
			return true
		}
	}
	return false
}
