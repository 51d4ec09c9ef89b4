// Package builder generates the benchmark graph families used to exercise
// sum-colouring solvers: complete graphs, cycles, paths, stars, wheels,
// binary trees, complete bipartite graphs, Mycielski graphs, ladder-diagonal
// graphs, grids and random graphs with an exact edge count.
//
// Every generator is a Constructor closure; BuildGraph resolves the
// functional options once and runs the constructors in order, giving each a
// fresh block of vertices, so several families compose into one disjoint
// union:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Cycle(5),
//	    builder.RandomEdges(10, 20),
//	)
//
// Vertex numbering inside a constructor is documented per constructor and is
// stable for a given seed. Stochastic constructors require WithSeed or
// WithRand; they fail with ErrNeedRandSource otherwise.
//
// ByKind maps the short family names of the command-line generator
// (K, C, L, S, W, T, BK, M, LD, G, R) onto constructors.
package builder
