package ilp

import (
	"fmt"
	"math/big"
)

// Problem is an integer program in standard form:
//
//	minimize   Σ cost[j]·x[j]
//	subject to A·x = b, x ≥ 0, x integer.
//
// Rows are stored augmented as [a_0 … a_{n-1} | b]. A Problem is never
// mutated by Solve; the cut loop works on a private copy.
type Problem struct {
	cost []*big.Int
	rows [][]*big.Int
}

// NewProblem validates and deep-copies cost and rows. Every row must have
// len(cost)+1 entries. Rows with a negative right-hand side are negated so
// that b ≥ 0 holds, as the tableau requires.
//
// Errors: ErrEmptyProblem, ErrDimensionMismatch.
func NewProblem(cost []*big.Int, rows [][]*big.Int) (*Problem, error) {
	const method = "NewProblem"
	n := len(cost)
	if n == 0 {
		return nil, fmt.Errorf("%s: no columns: %w", method, ErrEmptyProblem)
	}

	p := &Problem{
		cost: make([]*big.Int, n),
		rows: make([][]*big.Int, len(rows)),
	}
	for j, c := range cost {
		if c == nil {
			return nil, fmt.Errorf("%s: cost[%d] is nil: %w", method, j, ErrDimensionMismatch)
		}
		p.cost[j] = new(big.Int).Set(c)
	}
	for i, row := range rows {
		if len(row) != n+1 {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", method, i, len(row), n+1, ErrDimensionMismatch)
		}
		cp := make([]*big.Int, n+1)
		for j, a := range row {
			if a == nil {
				return nil, fmt.Errorf("%s: row %d col %d is nil: %w", method, i, j, ErrDimensionMismatch)
			}
			cp[j] = new(big.Int).Set(a)
		}
		if cp[n].Sign() < 0 {
			negateRow(cp)
		}
		p.rows[i] = cp
	}

	return p, nil
}

// NewProblemInt64 is NewProblem for small machine-integer data.
func NewProblemInt64(cost []int64, rows [][]int64) (*Problem, error) {
	bc := make([]*big.Int, len(cost))
	for j, c := range cost {
		bc[j] = big.NewInt(c)
	}
	br := make([][]*big.Int, len(rows))
	for i, row := range rows {
		br[i] = make([]*big.Int, len(row))
		for j, a := range row {
			br[i][j] = big.NewInt(a)
		}
	}
	return NewProblem(bc, br)
}

// NumCols returns the number of variables.
func (p *Problem) NumCols() int { return len(p.cost) }

// NumRows returns the number of constraints.
func (p *Problem) NumRows() int { return len(p.rows) }

// clone deep-copies p.
func (p *Problem) clone() *Problem {
	out := &Problem{
		cost: copyRow(p.cost),
		rows: make([][]*big.Int, len(p.rows)),
	}
	for i, row := range p.rows {
		out.rows[i] = copyRow(row)
	}
	return out
}

// prependSlack adds a new zero-cost column in front of every existing column
// and appends the cut row, which must already be in the new layout.
func (p *Problem) prependSlack(cut []*big.Int) {
	p.cost = append([]*big.Int{new(big.Int)}, p.cost...)
	for i, row := range p.rows {
		p.rows[i] = append([]*big.Int{new(big.Int)}, row...)
	}
	p.rows = append(p.rows, cut)
}
