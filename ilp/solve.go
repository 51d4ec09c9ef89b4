package ilp

import (
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
)

// engine holds the budgets and counters of one Solve call.
type engine struct {
	opts Options
	log  *zap.Logger

	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter

	pivots int
	cuts   int
}

// deadlineCheck tests the context and the time budget every 1024 pivots.
func (e *engine) deadlineCheck() error {
	e.steps++
	if e.steps&1023 != 0 {
		return nil
	}
	return e.expired()
}

func (e *engine) expired() error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}
	return nil
}

// Solve finds an optimal integral solution of p.
//
// Each round canonicalizes the current problem (Phase 1), runs the primal
// simplex (Phase 2) and inspects the basic values. If one is fractional, a
// Gomory cut derived from the first fractional row is appended to the
// problem together with a new slack column, and the round restarts from
// scratch. p itself is never modified.
//
// Errors:
//   - ErrInfeasible, ErrUnbounded, *NumericError (all match ErrNumeric);
//   - ErrCutLimit, ErrPivotLimit, ErrTimeLimit, or the context error.
//
// Determinism: the result depends only on p and the options' limits.
func Solve(p *Problem, opts ...Option) (*Solution, error) {
	const method = "Solve"
	if p == nil || len(p.cost) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyProblem)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &engine{opts: o, log: o.Logger}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	if err := e.expired(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	work := p.clone()
	origCols := len(p.cost)

	for {
		t, err := e.canonicalize(work)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, e.cuts, err)
		}
		if err := e.simplex(t, "phase2"); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, e.cuts, err)
		}
		e.log.Debug("phase 2 optimum",
			zap.Int("round", e.cuts),
			zap.String("objective", t.rows[0][t.rhs()].String()),
			zap.String("scale", t.rows[0][0].String()))

		r := fractionalRow(t)
		if r < 0 {
			sol, err := e.extract(t, work, origCols)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			e.log.Debug("integral optimum",
				zap.String("objective", sol.Objective.String()),
				zap.Int("cuts", sol.Cuts),
				zap.Int("pivots", sol.Pivots))
			return sol, nil
		}

		if e.cuts >= o.MaxCuts {
			return nil, fmt.Errorf("%s: %d cuts: %w", method, e.cuts, ErrCutLimit)
		}
		if err := e.expired(); err != nil {
			return nil, fmt.Errorf("%s: after %d cuts: %w", method, e.cuts, err)
		}

		cut, err := gomoryCut(t, r)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, e.cuts, err)
		}
		work.prependSlack(cut)
		e.cuts++
		e.log.Debug("gomory cut",
			zap.Int("row", r),
			zap.String("divisor", t.rows[r][t.basis[r]].String()),
			zap.Int("rows", len(work.rows)),
			zap.Int("cols", len(work.cost)))
	}
}

// extract reads the integral basic solution. The original columns are the
// trailing origCols columns of the work problem; cut slacks lead.
func (e *engine) extract(t *tableau, work *Problem, origCols int) (*Solution, error) {
	n := len(work.cost)
	values := zeroRow(n)
	for i := 1; i < len(t.rows); i++ {
		num, den := t.value(i)
		q, m := new(big.Int).QuoRem(num, den, new(big.Int))
		if m.Sign() != 0 {
			return nil, numericErr("extract", i, t.rhs(), "fractional basic value")
		}
		values[t.basis[i]-1] = q
	}

	obj := new(big.Int)
	tmp := new(big.Int)
	for j, c := range work.cost {
		obj.Add(obj, tmp.Mul(c, values[j]))
	}
	// Row 0 must agree: t00·z = v at the basic solution.
	if tmp.Mul(t.rows[0][0], obj).Cmp(t.rows[0][t.rhs()]) != 0 {
		return nil, numericErr("extract", 0, t.rhs(), "objective row disagrees with solution")
	}

	return &Solution{
		Values:    values[n-origCols:],
		Objective: obj,
		Cuts:      e.cuts,
		Pivots:    e.pivots,
	}, nil
}
