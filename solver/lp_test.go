package solver_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/solver"
)

func TestEncodeProblem_Layout(t *testing.T) {
	// Path 1-2-3: two edges, three colours.
	g := graph.MustGraph(3, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 3})

	p, enc, err := solver.EncodeProblem(g)
	require.NoError(t, err)
	require.Equal(t, solver.Encoding{Vertices: 3, MaxColours: 3, Edges: 2, XOffset: 6}, enc)
	require.Equal(t, 15, enc.NumCols())
	require.Equal(t, 15, p.NumCols())
	require.Equal(t, 3+2*3, p.NumRows())

	require.Equal(t, 6, enc.Column(1, 1))
	require.Equal(t, 8, enc.Column(3, 1))
	require.Equal(t, 9, enc.Column(1, 2))
	require.Equal(t, 14, enc.Column(3, 3))
	require.Equal(t, 0, enc.SlackColumn(0, 1))
	require.Equal(t, 5, enc.SlackColumn(1, 3))
}

func TestEncodeProblem_NoEdges(t *testing.T) {
	p, enc, err := solver.EncodeProblem(graph.MustGraph(2))
	require.NoError(t, err)
	require.Equal(t, 1, enc.MaxColours)
	require.Equal(t, 0, enc.XOffset)
	require.Equal(t, 2, p.NumCols())
	require.Equal(t, 2, p.NumRows())
}

func values(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestExtract(t *testing.T) {
	// Single edge: 1 edge, 2 colours; slacks s0,s1 then x11 x21 x12 x22.
	enc := solver.Encoding{Vertices: 2, MaxColours: 2, Edges: 1, XOffset: 2}

	colouring, err := enc.Extract(values(0, 1, 0, 1, 1, 0))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, colouring)

	cases := []struct {
		name string
		vals []*big.Int
	}{
		{"wrong length", values(0, 1, 0, 1)},
		{"non-binary", values(0, 0, 0, 2, 1, 0)},
		{"two colours", values(0, 0, 1, 1, 1, 0)},
		{"no colour", values(0, 0, 0, 1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enc.Extract(tc.vals)
			require.ErrorIs(t, err, solver.ErrExtraction)
		})
	}
}
