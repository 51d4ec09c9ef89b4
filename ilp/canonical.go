package ilp

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// canonicalize builds a Phase-2-ready tableau for p: it finds a basic
// feasible solution with artificial variables (Phase 1), drives leftover
// artificials out of the basis, drops redundant rows and artificial columns,
// and installs the real objective with zero reduced cost on every basic
// column.
//
// Phase-1 layout: [z | artificials | real columns | rhs].
func (e *engine) canonicalize(p *Problem) (*tableau, error) {
	n := len(p.cost)
	m := len(p.rows)

	rowBasis := unitColumns(p)
	var artRows []int
	for i, j := range rowBasis {
		if j < 0 {
			artRows = append(artRows, i)
		}
	}
	k := len(artRows)
	width := 1 + k + n + 1
	realOff := 1 + k

	t := &tableau{
		rows:  make([][]*big.Int, m+1),
		basis: make([]int, m+1),
	}
	t.rows[0] = zeroRow(width)
	t.rows[0][0].SetInt64(1)

	art := 0
	for i, src := range p.rows {
		row := zeroRow(width)
		for j := 0; j < n; j++ {
			row[realOff+j].Set(src[j])
		}
		row[width-1].Set(src[n])
		if rowBasis[i] >= 0 {
			t.basis[i+1] = realOff + rowBasis[i]
		} else {
			row[1+art].SetInt64(1)
			t.basis[i+1] = 1 + art
			art++
			// Phase-1 objective row is the sum of the artificial rows, which
			// leaves every artificial with zero reduced cost.
			for j := realOff; j < width; j++ {
				t.rows[0][j].Add(t.rows[0][j], row[j])
			}
		}
		t.rows[i+1] = row
	}

	if k > 0 {
		if err := e.simplex(t, "phase1"); err != nil {
			return nil, err
		}
		if res := t.rows[0][width-1]; res.Sign() != 0 {
			e.log.Debug("phase 1 residual", zap.String("residual", res.String()))
			return nil, fmt.Errorf("phase1: residual %s/%s: %w", res, t.rows[0][0], ErrInfeasible)
		}
		if err := e.expelArtificials(t, realOff); err != nil {
			return nil, err
		}
		dropColumns(t, 1, k)
	}
	e.log.Debug("phase 1 done",
		zap.Int("artificials", k),
		zap.Int("rows", len(t.rows)-1),
		zap.Int("pivots", e.pivots))

	if err := installObjective(t, p.cost); err != nil {
		return nil, err
	}

	return t, nil
}

// unitColumns assigns to each row the first column, scanning left to right,
// that is +1 in that row and zero elsewhere. Rows without one get -1.
func unitColumns(p *Problem) []int {
	m, n := len(p.rows), len(p.cost)
	rowBasis := make([]int, m)
	for i := range rowBasis {
		rowBasis[i] = -1
	}

	for j := 0; j < n; j++ {
		at := -1
		for i := 0; i < m; i++ {
			if p.rows[i][j].Sign() == 0 {
				continue
			}
			if at >= 0 {
				at = -2
				break
			}
			at = i
		}
		if at < 0 || !isOne(p.rows[at][j]) || rowBasis[at] >= 0 {
			continue
		}
		rowBasis[at] = j
	}

	return rowBasis
}

func isOne(x *big.Int) bool { return x.IsInt64() && x.Int64() == 1 }

// expelArtificials pivots each row still held by an artificial onto the
// first real column with a non-zero entry in that row. Such rows have a zero
// right-hand side, so the pivot keeps every value. Rows with no such column
// are linear combinations of the others and are removed.
func (e *engine) expelArtificials(t *tableau, realOff int) error {
	rhs := t.rhs()
	redundant := make(map[int]bool)

	for i := 1; i < len(t.rows); i++ {
		if t.basis[i] >= realOff {
			continue
		}
		col := -1
		for j := realOff; j < rhs; j++ {
			if t.rows[i][j].Sign() != 0 {
				col = j
				break
			}
		}
		if col < 0 {
			if t.rows[i][rhs].Sign() != 0 {
				return numericErr("cleanup", i, rhs, "artificial row with non-zero value")
			}
			redundant[i] = true
			continue
		}
		if err := e.pivot(t, i, col, "cleanup"); err != nil {
			return err
		}
	}
	if len(redundant) == 0 {
		return nil
	}

	rows := make([][]*big.Int, 0, len(t.rows)-len(redundant))
	basis := make([]int, 0, cap(rows))
	for i, row := range t.rows {
		if redundant[i] {
			e.log.Debug("redundant row removed", zap.Int("row", i))
			continue
		}
		rows = append(rows, row)
		basis = append(basis, t.basis[i])
	}
	t.rows, t.basis = rows, basis

	return nil
}

// dropColumns removes columns [from, from+count) from every row and shifts
// basis indices accordingly. None of the dropped columns may be basic.
func dropColumns(t *tableau, from, count int) {
	for i, row := range t.rows {
		t.rows[i] = append(row[:from:from], row[from+count:]...)
	}
	for i, b := range t.basis {
		if b >= from+count {
			t.basis[i] = b - count
		}
	}
}

// installObjective replaces row 0 with z − Σ c_j·x_j = 0 (real columns start
// at index 1) and eliminates every basic column from it, using only integer
// row combinations.
func installObjective(t *tableau, cost []*big.Int) error {
	obj := zeroRow(len(t.rows[0]))
	obj[0].SetInt64(1)
	for j, c := range cost {
		obj[1+j].Neg(c)
	}
	t.rows[0] = obj

	for i := 1; i < len(t.rows); i++ {
		b := t.basis[i]
		if obj[b].Sign() == 0 {
			continue
		}
		eliminate(obj, t.rows[i], b)
	}
	if obj[0].Sign() <= 0 {
		return numericErr("phase2", 0, 0, "objective scale not positive")
	}
	reduceRow(obj)

	return nil
}
