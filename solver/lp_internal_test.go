package solver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lychanl/SumColouring/ilp"
)

func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestEncodingColouring_Defects(t *testing.T) {
	// Single edge: slacks s0,s1 then x11 x21 x12 x22.
	enc := Encoding{Vertices: 2, MaxColours: 2, Edges: 1, XOffset: 2}

	colouring, err := enc.colouring(&ilp.Solution{Values: bigs(0, 1, 0, 1, 1, 0), Objective: big.NewInt(3)})
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, colouring)

	cases := []struct {
		name string
		sol  *ilp.Solution
	}{
		{"two colours", &ilp.Solution{Values: bigs(0, 0, 1, 1, 1, 0), Objective: big.NewInt(4)}},
		{"fractional leftover", &ilp.Solution{Values: bigs(0, 0, 0, 2, 1, 0), Objective: big.NewInt(3)}},
		{"objective mismatch", &ilp.Solution{Values: bigs(0, 1, 0, 1, 1, 0), Objective: big.NewInt(4)}},
		{"no objective", &ilp.Solution{Values: bigs(0, 1, 0, 1, 1, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enc.colouring(tc.sol)
			require.ErrorIs(t, err, ErrExtraction)
			require.ErrorIs(t, err, ilp.ErrNumeric)
		})
	}
}
