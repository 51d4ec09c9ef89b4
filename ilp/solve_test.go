package ilp_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lychanl/SumColouring/ilp"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func int64s(xs []*big.Int) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = x.Int64()
	}
	return out
}

func mustProblem(t *testing.T, cost []int64, rows ...[]int64) *ilp.Problem {
	t.Helper()
	p, err := ilp.NewProblemInt64(cost, rows)
	require.NoError(t, err)
	return p
}

// triangle is the chromatic-sum program of K3 (3 vertices, 3 edges, 3
// colours): slacks first, then x colour-major. Its LP relaxation is
// fractional, so it needs cuts.
func triangle(t *testing.T) *ilp.Problem {
	t.Helper()
	const v, e, k = 3, 3, 3
	edges := [][2]int{{1, 2}, {1, 3}, {2, 3}}
	n := e*k + v*k
	x := func(i, c int) int { return e*k + (c-1)*v + (i - 1) }

	cost := make([]int64, n)
	for c := 1; c <= k; c++ {
		for i := 1; i <= v; i++ {
			cost[x(i, c)] = int64(c)
		}
	}
	var rows [][]int64
	for i := 1; i <= v; i++ {
		row := make([]int64, n+1)
		for c := 1; c <= k; c++ {
			row[x(i, c)] = 1
		}
		row[n] = 1
		rows = append(rows, row)
	}
	for idx, ed := range edges {
		for c := 1; c <= k; c++ {
			row := make([]int64, n+1)
			row[x(ed[0], c)] = 1
			row[x(ed[1], c)] = 1
			row[idx*k+c-1] = 1
			row[n] = 1
			rows = append(rows, row)
		}
	}
	return mustProblem(t, cost, rows...)
}

func TestSolve_IntegralWithoutCuts(t *testing.T) {
	// min 2x + 3y  s.t.  x + y = 4
	p := mustProblem(t, []int64{2, 3}, []int64{1, 1, 4})

	sol, err := ilp.Solve(p)
	require.NoError(t, err)
	require.Equal(t, []int64{4, 0}, int64s(sol.Values))
	require.Equal(t, int64(8), sol.Objective.Int64())
	require.Zero(t, sol.Cuts)
}

func TestSolve_NeedsCuts(t *testing.T) {
	cases := []struct {
		name    string
		cost    []int64
		rows    [][]int64
		want    []int64
		wantObj int64
	}{
		{
			// max x + y  s.t.  2x + 2y + s = 3; LP optimum 3/2.
			name:    "half",
			cost:    []int64{-1, -1, 0},
			rows:    [][]int64{{2, 2, 1, 3}},
			want:    []int64{1, 0, 1},
			wantObj: -1,
		},
		{
			// max 5x + 4y  s.t.  6x + 4y ≤ 24, x + 2y ≤ 6; LP optimum (3, 3/2).
			name:    "knapsack",
			cost:    []int64{-5, -4, 0, 0},
			rows:    [][]int64{{6, 4, 1, 0, 24}, {1, 2, 0, 1, 6}},
			want:    []int64{4, 0, 0, 2},
			wantObj: -20,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := ilp.Solve(mustProblem(t, tc.cost, tc.rows...))
			require.NoError(t, err)
			require.Equal(t, tc.want, int64s(sol.Values))
			require.Equal(t, tc.wantObj, sol.Objective.Int64())
			require.Positive(t, sol.Cuts)
		})
	}
}

func TestSolve_Triangle(t *testing.T) {
	sol, err := ilp.Solve(triangle(t))
	require.NoError(t, err)
	require.Equal(t, int64(6), sol.Objective.Int64())
	require.Len(t, sol.Values, 18)
	for j, v := range sol.Values {
		require.Truef(t, v.Sign() == 0 || v.Cmp(big.NewInt(1)) == 0, "column %d = %s", j, v)
	}
	require.Positive(t, sol.Cuts)
}

func TestSolve_BlandFromStart(t *testing.T) {
	want, err := ilp.Solve(triangle(t))
	require.NoError(t, err)

	got, err := ilp.Solve(triangle(t), ilp.WithDegenerateLimit(0))
	require.NoError(t, err)
	require.Zero(t, want.Objective.Cmp(got.Objective))
}

func TestSolve_RedundantAndNegatedRows(t *testing.T) {
	// x + y = 2 twice; min x + 2y.
	sol, err := ilp.Solve(mustProblem(t, []int64{1, 2}, []int64{1, 1, 2}, []int64{1, 1, 2}))
	require.NoError(t, err)
	require.Equal(t, []int64{2, 0}, int64s(sol.Values))
	require.Equal(t, int64(2), sol.Objective.Int64())

	// -x - y = -3 is stored as x + y = 3.
	sol, err = ilp.Solve(mustProblem(t, []int64{1, 1}, []int64{-1, -1, -3}))
	require.NoError(t, err)
	require.Equal(t, int64(3), sol.Objective.Int64())
}

func TestSolve_NoRows(t *testing.T) {
	sol, err := ilp.Solve(mustProblem(t, []int64{1}))
	require.NoError(t, err)
	require.Equal(t, []int64{0}, int64s(sol.Values))
	require.Zero(t, sol.Objective.Sign())

	_, err = ilp.Solve(mustProblem(t, []int64{-1}))
	require.ErrorIs(t, err, ilp.ErrUnbounded)
}

func TestSolve_NumericFailures(t *testing.T) {
	cases := []struct {
		name string
		cost []int64
		rows [][]int64
		want error
	}{
		{"infeasible", []int64{1, 1}, [][]int64{{1, 1, 1}, {1, 1, 2}}, ilp.ErrInfeasible},
		{"unbounded", []int64{-1, 0}, [][]int64{{1, -1, 1}}, ilp.ErrUnbounded},
		{"no integer point", []int64{0}, [][]int64{{2, 1}}, ilp.ErrNumeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ilp.Solve(mustProblem(t, tc.cost, tc.rows...))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ilp.ErrNumeric)
		})
	}
}

func TestSolve_NoIntegerPointIsNumericError(t *testing.T) {
	_, err := ilp.Solve(mustProblem(t, []int64{0}, []int64{2, 1}))
	var ne *ilp.NumericError
	require.True(t, errors.As(err, &ne))
	require.Equal(t, "gomory", ne.Stage)
}

func TestSolve_Budgets(t *testing.T) {
	_, err := ilp.Solve(triangle(t), ilp.WithMaxCuts(0))
	require.ErrorIs(t, err, ilp.ErrCutLimit)
	require.NotErrorIs(t, err, ilp.ErrNumeric)

	_, err = ilp.Solve(triangle(t), ilp.WithMaxPivots(1))
	require.ErrorIs(t, err, ilp.ErrPivotLimit)
}

func TestSolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ilp.Solve(triangle(t), ilp.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_DoesNotMutateProblem(t *testing.T) {
	p := triangle(t)
	cols, rows := p.NumCols(), p.NumRows()

	first, err := ilp.Solve(p)
	require.NoError(t, err)
	require.Equal(t, cols, p.NumCols())
	require.Equal(t, rows, p.NumRows())

	second, err := ilp.Solve(p)
	require.NoError(t, err)
	require.Equal(t, int64s(first.Values), int64s(second.Values))
	require.Equal(t, first.Cuts, second.Cuts)
	require.Equal(t, first.Pivots, second.Pivots)
}

func TestSolve_LogsRounds(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := ilp.Solve(triangle(t), ilp.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NotZero(t, logs.FilterMessage("gomory cut").Len())
	require.Equal(t, 1, logs.FilterMessage("integral optimum").Len())
}

func TestSolve_Empty(t *testing.T) {
	_, err := ilp.Solve(nil)
	require.ErrorIs(t, err, ilp.ErrEmptyProblem)
}

func TestNewProblem_Errors(t *testing.T) {
	_, err := ilp.NewProblemInt64(nil, nil)
	require.ErrorIs(t, err, ilp.ErrEmptyProblem)

	_, err = ilp.NewProblemInt64([]int64{1, 2}, [][]int64{{1, 1}})
	require.ErrorIs(t, err, ilp.ErrDimensionMismatch)

	_, err = ilp.NewProblem(ints(1), [][]*big.Int{{big.NewInt(1), nil}})
	require.ErrorIs(t, err, ilp.ErrDimensionMismatch)
}

func TestNewProblem_CopiesInput(t *testing.T) {
	cost := ints(2, 3)
	rows := [][]*big.Int{ints(1, 1, 4)}
	p, err := ilp.NewProblem(cost, rows)
	require.NoError(t, err)

	cost[0].SetInt64(100)
	rows[0][2].SetInt64(100)

	sol, err := ilp.Solve(p)
	require.NoError(t, err)
	require.Equal(t, int64(8), sol.Objective.Int64())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { ilp.WithMaxCuts(-1) })
	require.Panics(t, func() { ilp.WithMaxPivots(0) })
	require.Panics(t, func() { ilp.WithTimeLimit(-1) })
	require.Panics(t, func() { ilp.WithDegenerateLimit(-1) })
}
