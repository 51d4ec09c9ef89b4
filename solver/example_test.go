// Package solver_test provides runnable examples of the chromatic-sum solvers.
package solver_test

import (
	"fmt"

	"github.com/lychanl/SumColouring/builder"
	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/solver"
)

// ExampleNew_lp colours a 5-cycle with the exact integer program.
func ExampleNew_lp() {
	// 1) Build C5: vertices 1..5, edges around the ring.
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Pick the LP solver with default budgets.
	s, err := solver.New(solver.LP)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) An odd cycle needs a third colour on one vertex: 1+2+1+2+3 = 9.
	colouring, err := s.FindColouring(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(colouring, graph.ChromaticSum(colouring))
	// Output: [3 1 2 1 2] 9
}

// ExampleParseAlgorithm compares the greedy heuristic with MaxSAT on a star.
func ExampleParseAlgorithm() {
	g := graph.MustGraph(4,
		graph.Edge{U: 1, V: 2},
		graph.Edge{U: 1, V: 3},
		graph.Edge{U: 1, V: 4},
	)

	for _, name := range []string{"greedy", "maxsat"} {
		algo, err := solver.ParseAlgorithm(name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		s, _ := solver.New(algo)
		colouring, err := s.FindColouring(g)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: sum=%d\n", algo, graph.ChromaticSum(colouring))
	}
	// Output:
	// greedy: sum=5
	// maxsat: sum=5
}
