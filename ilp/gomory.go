package ilp

import "math/big"

// fractionalRow returns the first constraint row whose right-hand side is
// not divisible by its basic coefficient, or -1 if the basic solution is
// integral.
func fractionalRow(t *tableau) int {
	rem := new(big.Int)
	for i := 1; i < len(t.rows); i++ {
		num, den := t.value(i)
		if rem.Mod(num, den).Sign() != 0 {
			return i
		}
	}
	return -1
}

// gomoryCut derives the fractional cut from tableau row r in the layout of
// the next problem, whose new slack column comes first.
//
// With basic coefficient d the row reads d·x_B + Σ a_j·x_j = b, so every
// integer solution has Σ (a_j mod d)·x_j ≡ b (mod d), and since the left side
// is non-negative, Σ (a_j mod d)·x_j − d·s = b mod d for an integer s ≥ 0.
// The returned row is [−d, (a_j mod d)…, b mod d] divided by its GCD.
//
// A row whose residues are all zero while b mod d is not has no integer
// solution at all.
func gomoryCut(t *tableau, r int) ([]*big.Int, error) {
	rhs := t.rhs()
	src := t.rows[r]
	d := src[t.basis[r]]

	// Real columns are 1..rhs-1; the cut has one more (the slack) plus rhs.
	cut := make([]*big.Int, rhs+1)
	cut[0] = new(big.Int).Neg(d)
	allZero := true
	for j := 1; j < rhs; j++ {
		cut[j] = new(big.Int).Mod(src[j], d)
		if cut[j].Sign() != 0 {
			allZero = false
		}
	}
	cut[rhs] = new(big.Int).Mod(src[rhs], d)

	if allZero && cut[rhs].Sign() != 0 {
		return nil, numericErr("gomory", r, rhs, "no integer solution")
	}
	reduceRow(cut)

	return cut, nil
}
