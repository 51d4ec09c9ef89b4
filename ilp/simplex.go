package ilp

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// simplex runs primal simplex on a canonical tableau until no column
// improves the objective.
//
// Entering column: Dantzig's rule (largest positive reduced cost, lowest
// index on ties). After DegenerateLimit consecutive degenerate pivots the
// run switches to Bland's rule (lowest positive index) for good.
// Leaving row: exact minimum ratio by cross-multiplication; the first row
// wins ties, or under Bland the row whose basic column is lowest.
func (e *engine) simplex(t *tableau, stage string) error {
	var (
		runPivots  int
		degenerate int
		bland      = e.opts.DegenerateLimit == 0
		rhs        = t.rhs()
	)

	for {
		c, err := e.entering(t, bland, stage)
		if err != nil {
			return err
		}
		if c < 0 {
			return nil
		}
		r := leaving(t, c, bland)

		if runPivots >= e.opts.MaxPivots {
			return fmt.Errorf("%s: %d pivots: %w", stage, runPivots, ErrPivotLimit)
		}
		if err := e.deadlineCheck(); err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}

		if t.rows[r][rhs].Sign() == 0 {
			degenerate++
		} else {
			degenerate = 0
		}
		if !bland && degenerate >= e.opts.DegenerateLimit {
			bland = true
			e.log.Warn("switching to Bland's rule",
				zap.String("stage", stage),
				zap.Int("degenerate", degenerate),
				zap.Int("pivots", runPivots))
		}

		if err := e.pivot(t, r, c, stage); err != nil {
			return err
		}
		runPivots++
	}
}

// entering returns the entering column or -1 at optimality. A column with a
// positive reduced cost and no positive constraint entry proves the
// objective unbounded.
func (e *engine) entering(t *tableau, bland bool, stage string) (int, error) {
	obj := t.rows[0]
	best := -1
	for j := 1; j < t.rhs(); j++ {
		if obj[j].Sign() <= 0 {
			continue
		}
		if !hasPositive(t, j) {
			return -1, fmt.Errorf("%s: column %d: %w", stage, j, ErrUnbounded)
		}
		if bland {
			return j, nil
		}
		if best < 0 || obj[j].Cmp(obj[best]) > 0 {
			best = j
		}
	}

	return best, nil
}

func hasPositive(t *tableau, c int) bool {
	for i := 1; i < len(t.rows); i++ {
		if t.rows[i][c].Sign() > 0 {
			return true
		}
	}
	return false
}

// leaving returns the row minimising rhs/entry over positive entries of c.
// The caller guarantees such a row exists.
func leaving(t *tableau, c int, bland bool) int {
	rhs := t.rhs()
	best := -1
	lhs, rt := new(big.Int), new(big.Int)
	for i := 1; i < len(t.rows); i++ {
		a := t.rows[i][c]
		if a.Sign() <= 0 {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		// rhs_i/a < rhs_best/a_best  ⇔  rhs_i·a_best < rhs_best·a
		lhs.Mul(t.rows[i][rhs], t.rows[best][c])
		rt.Mul(t.rows[best][rhs], a)
		switch cmp := lhs.Cmp(rt); {
		case cmp < 0:
			best = i
		case cmp == 0 && bland && t.basis[i] < t.basis[best]:
			best = i
		}
	}

	return best
}
