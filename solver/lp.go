package solver

import (
	"fmt"
	"math/big"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/ilp"
)

// Encoding records the column layout produced by EncodeProblem.
//
// Columns: edge slacks first, s[e][c] at e·MaxColours + (c−1); then the
// vertex-colour indicators colour-major, x[i][c] at
// XOffset + (c−1)·Vertices + (i−1), with XOffset = Edges·MaxColours.
// Rows: one per vertex (Σ_c x[i][c] = 1) in vertex order, then one per
// edge and colour (x[u][c] + x[v][c] + s[e][c] = 1), colour inner.
type Encoding struct {
	Vertices   int
	MaxColours int
	Edges      int
	XOffset    int
}

// Column returns the index of x[vertex][colour].
func (enc Encoding) Column(vertex, colour int) int {
	return enc.XOffset + (colour-1)*enc.Vertices + (vertex - 1)
}

// SlackColumn returns the index of s[edge][colour]; edge is 0-based.
func (enc Encoding) SlackColumn(edge, colour int) int {
	return edge*enc.MaxColours + (colour - 1)
}

// NumCols returns the total number of columns.
func (enc Encoding) NumCols() int {
	return enc.XOffset + enc.MaxColours*enc.Vertices
}

// EncodeProblem builds the 0/1 program whose optimum is a minimum
// chromatic-sum colouring of g: minimise Σ c·x[i][c] subject to one colour
// per vertex and no colour shared across an edge. The cost of every slack
// is zero.
func EncodeProblem(g *graph.Graph) (*ilp.Problem, Encoding, error) {
	edges := g.Edges()
	enc := Encoding{
		Vertices:   g.Vertices(),
		MaxColours: graph.MaxColours(g),
		Edges:      len(edges),
	}
	enc.XOffset = enc.Edges * enc.MaxColours
	n := enc.NumCols()

	cost := make([]int64, n)
	for c := 1; c <= enc.MaxColours; c++ {
		for i := 1; i <= enc.Vertices; i++ {
			cost[enc.Column(i, c)] = int64(c)
		}
	}

	rows := make([][]int64, 0, enc.Vertices+enc.Edges*enc.MaxColours)
	for i := 1; i <= enc.Vertices; i++ {
		row := make([]int64, n+1)
		for c := 1; c <= enc.MaxColours; c++ {
			row[enc.Column(i, c)] = 1
		}
		row[n] = 1
		rows = append(rows, row)
	}
	for e, edge := range edges {
		for c := 1; c <= enc.MaxColours; c++ {
			row := make([]int64, n+1)
			row[enc.Column(edge.U, c)] = 1
			row[enc.Column(edge.V, c)] = 1
			row[enc.SlackColumn(e, c)] = 1
			row[n] = 1
			rows = append(rows, row)
		}
	}

	p, err := ilp.NewProblemInt64(cost, rows)
	if err != nil {
		return nil, enc, fmt.Errorf("EncodeProblem: %w", err)
	}
	return p, enc, nil
}

// Extract maps an optimum back to a colouring: x[i][c] = 1 means vertex i
// has colour c. Any x value outside {0,1}, or a vertex with no colour or with
// several, is ErrExtraction. Slack values are not inspected.
func (enc Encoding) Extract(values []*big.Int) ([]int, error) {
	if len(values) != enc.NumCols() {
		return nil, fmt.Errorf("Extract: %d values for %d columns: %w", len(values), enc.NumCols(), ErrExtraction)
	}

	colouring := make([]int, enc.Vertices)
	for c := 1; c <= enc.MaxColours; c++ {
		for i := 1; i <= enc.Vertices; i++ {
			v := values[enc.Column(i, c)]
			switch {
			case v.Sign() == 0:
				continue
			case !v.IsInt64() || v.Int64() != 1:
				return nil, fmt.Errorf("Extract: x[%d][%d]=%s: %w", i, c, v, ErrExtraction)
			case colouring[i-1] != 0:
				return nil, fmt.Errorf("Extract: vertex %d has colours %d and %d: %w", i, colouring[i-1], c, ErrExtraction)
			}
			colouring[i-1] = c
		}
	}
	for i, c := range colouring {
		if c == 0 {
			return nil, fmt.Errorf("Extract: vertex %d has no colour: %w", i+1, ErrExtraction)
		}
	}

	return colouring, nil
}

// lpColouring solves the encoded program with package ilp.
func lpColouring(g *graph.Graph, o Options) ([]int, error) {
	p, enc, err := EncodeProblem(g)
	if err != nil {
		return nil, err
	}
	sol, err := ilp.Solve(p, o.ilpOptions()...)
	if err != nil {
		return nil, err
	}
	return enc.colouring(sol)
}

// colouring extracts and cross-checks an ilp optimum. A failure here is a
// solver defect, so it matches both ErrExtraction and ilp.ErrNumeric.
func (enc Encoding) colouring(sol *ilp.Solution) ([]int, error) {
	colouring, err := enc.Extract(sol.Values)
	if err != nil {
		return nil, fmt.Errorf("lp: %w: %w", err, ilp.ErrNumeric)
	}
	if got := graph.ChromaticSum(colouring); sol.Objective == nil || sol.Objective.Cmp(big.NewInt(int64(got))) != 0 {
		return nil, fmt.Errorf("lp: objective %v but colour sum %d: %w: %w", sol.Objective, got, ErrExtraction, ilp.ErrNumeric)
	}

	return colouring, nil
}
