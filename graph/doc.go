// Package graph is the immutable undirected simple graph shared by every
// sum-colouring algorithm.
//
// Vertices are the integers 1..V. Edges are normalised to (min,max),
// de-duplicated and kept sorted, so two graphs built from the same edge set
// in any order are identical and every algorithm sees the same iteration
// order. Beyond construction the package offers the pieces the solvers share:
//
//   - MaxColours: the colour bound max(degree)+1;
//   - Components / Induced: BFS component split with renumbering;
//   - ValidateColouring / ChromaticSum: checking and scoring an answer.
package graph
