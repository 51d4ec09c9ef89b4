package ilp

import "math/big"

// tableau is the exact integer simplex tableau.
//
// Row 0 encodes the objective as t00·z + Σ r_j·x_j = v with t00 > 0, so
// z = (v − Σ r_j·x_j)/t00 and a column with r_j > 0 improves (lowers) z.
// Rows 1..m are constraints. Column 0 is z and the last column is the
// right-hand side.
//
// Invariants after every pivot:
//   - basis[0] = 0 and basis[r] is zero in every row but r;
//   - rows[r][basis[r]] = d_r > 0 and the basic value is rows[r][rhs]/d_r;
//   - rows[r][rhs] ≥ 0 for r ≥ 1.
type tableau struct {
	rows  [][]*big.Int
	basis []int
}

// rhs returns the index of the right-hand-side column.
func (t *tableau) rhs() int { return len(t.rows[0]) - 1 }

// value returns the basic value of row r as a fraction num/den.
func (t *tableau) value(r int) (num, den *big.Int) {
	return t.rows[r][t.rhs()], t.rows[r][t.basis[r]]
}

func zeroRow(n int) []*big.Int {
	row := make([]*big.Int, n)
	for j := range row {
		row[j] = new(big.Int)
	}
	return row
}

func copyRow(row []*big.Int) []*big.Int {
	out := make([]*big.Int, len(row))
	for j, x := range row {
		out[j] = new(big.Int).Set(x)
	}
	return out
}

func negateRow(row []*big.Int) {
	for _, x := range row {
		x.Neg(x)
	}
}

// reduceRow divides row by the GCD of its entries. A zero row is left alone.
func reduceRow(row []*big.Int) {
	g := new(big.Int)
	abs := new(big.Int)
	for _, x := range row {
		if x.Sign() == 0 {
			continue
		}
		g.GCD(nil, nil, g, abs.Abs(x))
		if g.IsInt64() && g.Int64() == 1 {
			return
		}
	}
	if g.Sign() == 0 {
		return
	}
	for _, x := range row {
		x.Quo(x, g)
	}
}

// combine sets row := f1·row − f2·src, element-wise.
func combine(row, src []*big.Int, f1, f2 *big.Int) {
	tmp := new(big.Int)
	for j := range row {
		tmp.Mul(f2, src[j])
		row[j].Mul(row[j], f1)
		row[j].Sub(row[j], tmp)
	}
}

// eliminate zeroes column c of row using src, whose entry p = src[c] must be
// positive: row := (p/g)·row − (a/g)·src with a = row[c], g = gcd(p,|a|).
// The multiplier on row is positive, so signs of entries that src leaves
// untouched are preserved.
func eliminate(row, src []*big.Int, c int) {
	p := src[c]
	a := row[c]
	g := new(big.Int).GCD(nil, nil, p, new(big.Int).Abs(a))
	f1 := new(big.Int).Quo(p, g)
	f2 := new(big.Int).Quo(a, g)
	combine(row, src, f1, f2)
}

// pivot brings column c into the basis at row r.
//
// The pivot row is normalised to a positive pivot element. Every other row
// with a non-zero entry in c is eliminated against it; a row whose basic
// coefficient turns negative is negated; a constraint row whose right-hand
// side turns negative is a fatal contradiction. Touched rows are reduced by
// their GCD.
func (e *engine) pivot(t *tableau, r, c int, stage string) error {
	e.pivots++
	rhs := t.rhs()
	pr := t.rows[r]

	switch pr[c].Sign() {
	case 0:
		return numericErr(stage, r, c, "zero pivot element")
	case -1:
		negateRow(pr)
	}
	if pr[rhs].Sign() < 0 {
		return numericErr(stage, r, c, "negative right-hand side in pivot row")
	}

	for i, row := range t.rows {
		if i == r || row[c].Sign() == 0 {
			continue
		}
		eliminate(row, pr, c)

		lead := row[t.basis[i]]
		switch lead.Sign() {
		case 0:
			return numericErr(stage, i, t.basis[i], "basic coefficient vanished")
		case -1:
			negateRow(row)
		}
		if i > 0 && row[rhs].Sign() < 0 {
			return numericErr(stage, i, rhs, "negative right-hand side")
		}
		reduceRow(row)
	}

	reduceRow(pr)
	t.basis[r] = c

	return nil
}
