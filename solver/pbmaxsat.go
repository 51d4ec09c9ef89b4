package solver

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
)

// colourVar names the gophersat variable for vertex i having colour c.
func colourVar(i, c int) string {
	return "x" + strconv.Itoa(i) + "_" + strconv.Itoa(c)
}

// pbMaxSATColouring builds the same weighted encoding as MaxSAT with
// pseudo-boolean cardinality constraints for "exactly one colour" and lets
// gophersat minimise the cost.
//
// Context cancellation is checked only before the call; gophersat's
// Minimize cannot be interrupted.
func pbMaxSATColouring(g *graph.Graph, o Options) ([]int, error) {
	n := g.Vertices()
	maxC := graph.MaxColours(g)
	if maxC == 1 {
		return ones(n), nil
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("pbmaxsat: %w", err)
	}

	edges := g.Edges()
	constrs := make([]maxsat.Constr, 0, 2*n+len(edges)*maxC+n*(maxC-1))

	pos := make([]maxsat.Lit, maxC)
	neg := make([]maxsat.Lit, maxC)
	unit := make([]int, maxC)
	for c := range unit {
		unit[c] = 1
	}
	for i := 1; i <= n; i++ {
		for c := 1; c <= maxC; c++ {
			pos[c-1] = maxsat.Var(colourVar(i, c))
			neg[c-1] = maxsat.Not(colourVar(i, c))
		}
		// At least one colour, and at least maxC-1 colours unused.
		constrs = append(constrs,
			maxsat.HardPBConstr(append([]maxsat.Lit(nil), pos...), append([]int(nil), unit...), 1),
			maxsat.HardPBConstr(append([]maxsat.Lit(nil), neg...), append([]int(nil), unit...), maxC-1))
	}
	for _, e := range edges {
		for c := 1; c <= maxC; c++ {
			constrs = append(constrs, maxsat.HardClause(maxsat.Not(colourVar(e.U, c)), maxsat.Not(colourVar(e.V, c))))
		}
	}
	for i := 1; i <= n; i++ {
		for c := 2; c <= maxC; c++ {
			constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(colourVar(i, c))}, c-1))
		}
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, fmt.Errorf("pbmaxsat: %w", ErrUnsatisfiable)
	}
	o.Logger.Debug("pbmaxsat model",
		zap.Int("constraints", len(constrs)),
		zap.Int("sum", n+cost))

	colouring, err := decodeModel(n, maxC, func(i, c int) bool { return model[colourVar(i, c)] })
	if err != nil {
		return nil, fmt.Errorf("pbmaxsat: %w", err)
	}
	return colouring, nil
}
