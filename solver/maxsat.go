package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/ilp"
)

// soft is one weighted soft clause. The clause is stored in the solver as
// lits ∨ blocker; assuming ¬blocker enforces it.
type soft struct {
	lits    []z.Lit
	weight  int
	blocker z.Lit
}

// wpm1 is a core-guided weighted partial MaxSAT run on one gini instance.
type wpm1 struct {
	sat     *gini.Gini
	next    z.Var
	softs   []soft
	byVar   map[z.Var]int // blocker variable -> index in softs
	retired []bool
}

func (w *wpm1) fresh() z.Lit {
	v := w.next
	w.next++
	return v.Pos()
}

func (w *wpm1) clause(lits ...z.Lit) {
	for _, m := range lits {
		w.sat.Add(m)
	}
	w.sat.Add(0)
}

func (w *wpm1) addSoft(lits []z.Lit, weight int) {
	b := w.fresh()
	w.clause(append(append([]z.Lit(nil), lits...), b)...)
	w.byVar[b.Var()] = len(w.softs)
	w.softs = append(w.softs, soft{lits: lits, weight: weight, blocker: b})
	w.retired = append(w.retired, false)
}

func (w *wpm1) exactlyOne(lits []z.Lit) {
	w.clause(lits...)
	for a := 0; a < len(lits); a++ {
		for b := a + 1; b < len(lits); b++ {
			w.clause(lits[a].Not(), lits[b].Not())
		}
	}
}

func (w *wpm1) assumptions() []z.Lit {
	out := make([]z.Lit, 0, len(w.softs))
	for k, s := range w.softs {
		if !w.retired[k] {
			out = append(out, s.blocker.Not())
		}
	}
	return out
}

// relax applies one WPM1 step to the soft clauses named by core: each is
// retired, split into a residual copy when heavier than the core minimum,
// and re-added with a fresh relaxation variable at the minimum weight. The
// relaxation variables are then constrained to exactly one.
func (w *wpm1) relax(core []z.Lit) (int, error) {
	idx := make([]int, 0, len(core))
	seen := make(map[int]bool, len(core))
	wmin := 0
	for _, m := range core {
		k, ok := w.byVar[m.Var()]
		if !ok || w.retired[k] {
			return 0, fmt.Errorf("core literal %v is not an active soft clause: %w", m, ErrExtraction)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		idx = append(idx, k)
		if wmin == 0 || w.softs[k].weight < wmin {
			wmin = w.softs[k].weight
		}
	}

	relaxers := make([]z.Lit, 0, len(idx))
	for _, k := range idx {
		s := w.softs[k]
		w.retired[k] = true
		w.clause(s.blocker)
		if s.weight > wmin {
			w.addSoft(s.lits, s.weight-wmin)
		}
		r := w.fresh()
		relaxers = append(relaxers, r)
		w.addSoft(append(append([]z.Lit(nil), s.lits...), r), wmin)
	}
	w.exactlyOne(relaxers)

	return wmin, nil
}

// maxSATColouring encodes the colouring as weighted partial MaxSAT and
// solves it with WPM1 on the gini SAT solver.
//
// Variables x[i][c] are true when vertex i has colour c. Hard clauses give
// every vertex exactly one colour and forbid equal colours across an edge.
// Colour c ≥ 2 of vertex i is the soft clause ¬x[i][c] with weight c−1, so
// the optimum cost plus V is the chromatic sum.
//
// The greedy colouring is an upper bound U. It caps the colour range and
// ends the search as soon as the core lower bound reaches it. Options.TimeLimit
// bounds the whole run, including a gini solve in progress.
func maxSATColouring(g *graph.Graph, o Options) ([]int, error) {
	n := g.Vertices()
	maxC := graph.MaxColours(g)
	if maxC == 1 {
		return ones(n), nil
	}

	upper, err := greedyColouring(g, o)
	if err != nil {
		return nil, fmt.Errorf("maxsat: %w", err)
	}
	best := graph.ChromaticSum(upper)
	// A vertex of colour c makes the sum at least c + (V-1).
	if c := best - n + 1; c < maxC {
		maxC = c
	}

	ctx := o.Ctx
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	x := func(i, c int) z.Lit { return z.Var((i-1)*maxC + c).Pos() }
	w := &wpm1{
		sat:   gini.New(),
		next:  z.Var(n*maxC + 1),
		byVar: make(map[z.Var]int),
	}

	row := make([]z.Lit, maxC)
	for i := 1; i <= n; i++ {
		for c := 1; c <= maxC; c++ {
			row[c-1] = x(i, c)
		}
		w.exactlyOne(row)
	}
	for _, e := range g.Edges() {
		for c := 1; c <= maxC; c++ {
			w.clause(x(e.U, c).Not(), x(e.V, c).Not())
		}
	}
	lowerColours(w, g, maxC, x)
	for i := 1; i <= n; i++ {
		for c := 2; c <= maxC; c++ {
			w.addSoft([]z.Lit{x(i, c).Not()}, c-1)
		}
	}
	o.Logger.Debug("maxsat encoding",
		zap.Int("colours", maxC),
		zap.Int("upperBound", best))

	lower := 0
	for cores := 0; ; cores++ {
		if cores > o.MaxSATMaxCores {
			return nil, fmt.Errorf("maxsat: %d cores, lower bound %d: %w", cores-1, n+lower, ErrCoreLimit)
		}
		w.sat.Assume(w.assumptions()...)
		switch solveCtx(ctx, w.sat) {
		case 1:
			o.Logger.Debug("maxsat model",
				zap.Int("cores", cores),
				zap.Int("sum", n+lower))
			colouring, err := decodeModel(n, maxC, func(i, c int) bool { return w.sat.Value(x(i, c)) })
			if err != nil {
				return nil, fmt.Errorf("maxsat: %w", err)
			}
			return colouring, nil
		case 0:
			if err := o.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("maxsat: %w", err)
			}
			return nil, fmt.Errorf("maxsat: %d cores, lower bound %d: %w", cores, n+lower, ilp.ErrTimeLimit)
		}

		core := w.sat.Why(nil)
		if len(core) == 0 {
			return nil, fmt.Errorf("maxsat: %w", ErrUnsatisfiable)
		}
		wmin, err := w.relax(core)
		if err != nil {
			return nil, fmt.Errorf("maxsat: %w", err)
		}
		lower += wmin
		if n+lower >= best {
			o.Logger.Debug("maxsat bound met by greedy",
				zap.Int("cores", cores+1),
				zap.Int("sum", best))
			return upper, nil
		}
	}
}

// lowerColours adds the hard clauses every optimum satisfies: a vertex of
// colour c has a neighbour of each colour below c, otherwise moving it to the
// missing colour lowers the sum. In particular its colour is at most
// degree+1.
func lowerColours(w *wpm1, g *graph.Graph, maxC int, x func(i, c int) z.Lit) {
	lits := make([]z.Lit, 0, g.MaxDegree()+1)
	for i := 1; i <= g.Vertices(); i++ {
		adj := g.Neighbours(i)
		for c := 2; c <= maxC; c++ {
			if c > len(adj)+1 {
				w.clause(x(i, c).Not())
				continue
			}
			for lc := 1; lc < c; lc++ {
				lits = append(lits[:0], x(i, c).Not())
				for _, j := range adj {
					lits = append(lits, x(j, lc))
				}
				w.clause(lits...)
			}
		}
	}
}

// solveCtx runs one Solve call that gives up when ctx is done. It returns 1
// (sat), -1 (unsat) or 0 (cancelled).
func solveCtx(ctx context.Context, s *gini.Gini) int {
	if ctx.Done() == nil {
		return s.Solve()
	}
	if ctx.Err() != nil {
		return 0
	}

	run := s.GoSolve()
	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			run.Stop()
			return 0
		case <-tick.C:
			if r, done := run.Test(); done {
				return r
			}
		}
	}
}

// decodeModel reads one colour per vertex from has(i, c).
func decodeModel(n, maxC int, has func(i, c int) bool) ([]int, error) {
	colouring := make([]int, n)
	for i := 1; i <= n; i++ {
		for c := 1; c <= maxC; c++ {
			if !has(i, c) {
				continue
			}
			if colouring[i-1] != 0 {
				return nil, fmt.Errorf("vertex %d has colours %d and %d: %w", i, colouring[i-1], c, ErrExtraction)
			}
			colouring[i-1] = c
		}
		if colouring[i-1] == 0 {
			return nil, fmt.Errorf("vertex %d has no colour: %w", i, ErrExtraction)
		}
	}
	return colouring, nil
}

func ones(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
