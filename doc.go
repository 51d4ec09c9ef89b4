// Package sumcolouring computes graph colourings that minimise the chromatic
// sum: the sum of the colours of all vertices, where adjacent vertices must
// differ and colours are the integers 1, 2, 3, ...
//
// 🚀 What is inside?
//
//	• graph/   immutable simple graphs on vertices 1..V, components, validation
//	• graphio/ the "V E" + edge-lines text format and "vertex colour" output
//	• builder/ deterministic generators (K, C, L, S, W, T, M, LD, BK, G, R)
//	• ilp/     exact-integer two-phase simplex with Gomory fractional cuts
//	• solver/  one Solver interface over LP, brute force, greedy, MaxSAT
//	           (gini) and pseudo-boolean MaxSAT (gophersat)
//	• cmd/sumcolour: solve / generate / compare from the command line
//
// ✨ Why exact integers?
//
// The LP tableau never holds a float. Every row is an integer multiple of
// the true row, kept small by GCD reduction, and a basic value is the exact
// quotient rhs/d. Integrality is a divisibility test, not a tolerance.
//
// Quick example (C5, optimal sum 9):
//
//	    1───2
//	   ╱     ╲
//	  5       3
//	   ╲     ╱
//	     4───
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	s, _ := solver.New(solver.LP)
//	colouring, _ := s.FindColouring(g) // [3 1 2 1 2]
package sumcolouring
