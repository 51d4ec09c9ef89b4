package ilp

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
)

// ErrNumeric is the distinguished arithmetic failure of the solver: a state
// that exact arithmetic proves impossible (negative right-hand side, vanished
// basic coefficient, non-integral objective) or a problem with no solution.
var ErrNumeric = errors.New("ilp: solver numeric error")

// Sentinels wrapping ErrNumeric, so errors.Is(err, ErrNumeric) holds for them.
var (
	// ErrInfeasible indicates a non-zero Phase-1 residual: no x ≥ 0 satisfies Ax = b.
	ErrInfeasible = fmt.Errorf("ilp: problem infeasible: %w", ErrNumeric)

	// ErrUnbounded indicates an entering column with no positive constraint entry.
	ErrUnbounded = fmt.Errorf("ilp: problem unbounded: %w", ErrNumeric)
)

// Budget and input sentinels. These are not numeric failures.
var (
	// ErrCutLimit indicates Options.MaxCuts cuts were added without an integral optimum.
	ErrCutLimit = errors.New("ilp: cut limit reached")

	// ErrPivotLimit indicates one simplex run exceeded Options.MaxPivots.
	ErrPivotLimit = errors.New("ilp: pivot limit reached")

	// ErrTimeLimit indicates Options.TimeLimit elapsed.
	ErrTimeLimit = errors.New("ilp: time limit reached")

	// ErrDimensionMismatch indicates a constraint row whose length is not len(cost)+1.
	ErrDimensionMismatch = errors.New("ilp: dimension mismatch")

	// ErrEmptyProblem indicates a problem without columns.
	ErrEmptyProblem = errors.New("ilp: empty problem")
)

// NumericError carries the location of an arithmetic contradiction.
// Stage is one of "phase1", "cleanup", "phase2", "gomory", "extract".
// Row and Col index the tableau (row 0 is the objective, col 0 is z); -1
// means not applicable.
type NumericError struct {
	Stage  string
	Row    int
	Col    int
	Reason string
}

// Error implements error.
func (e *NumericError) Error() string {
	return fmt.Sprintf("ilp: numeric error in %s at row %d col %d: %s", e.Stage, e.Row, e.Col, e.Reason)
}

// Unwrap returns ErrNumeric.
func (e *NumericError) Unwrap() error { return ErrNumeric }

func numericErr(stage string, row, col int, reason string) error {
	return &NumericError{Stage: stage, Row: row, Col: col, Reason: reason}
}

// Solution is an exact integral optimum.
type Solution struct {
	// Values[j] is the value of column j of the problem given to Solve.
	// Cut slack columns are not reported.
	Values []*big.Int

	// Objective is Σ cost[j]·Values[j].
	Objective *big.Int

	// Cuts is the number of Gomory cuts added.
	Cuts int

	// Pivots is the total number of pivots over all simplex runs.
	Pivots int
}

// Defaults for Options.
const (
	DefaultMaxCuts         = 10000
	DefaultMaxPivots       = 1 << 20
	DefaultDegenerateLimit = 50
)

// Options configures Solve.
//
//	MaxCuts         – cuts allowed before ErrCutLimit (≥ 0).
//	MaxPivots       – pivots allowed per simplex run before ErrPivotLimit (> 0).
//	TimeLimit       – soft wall-clock budget for the whole solve; 0 disables it.
//	DegenerateLimit – consecutive degenerate pivots before switching to Bland's
//	                  rule for the rest of the run; 0 uses Bland from the start.
//	Logger          – debug diagnostics; defaults to zap.NewNop().
//	Ctx             – cancellation, checked with the time limit.
type Options struct {
	MaxCuts         int
	MaxPivots       int
	TimeLimit       time.Duration
	DegenerateLimit int
	Logger          *zap.Logger
	Ctx             context.Context
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the defaults: DefaultMaxCuts, DefaultMaxPivots,
// no time limit, DefaultDegenerateLimit, a no-op logger and a background context.
func DefaultOptions() Options {
	return Options{
		MaxCuts:         DefaultMaxCuts,
		MaxPivots:       DefaultMaxPivots,
		TimeLimit:       0,
		DegenerateLimit: DefaultDegenerateLimit,
		Logger:          zap.NewNop(),
		Ctx:             context.Background(),
	}
}

// WithMaxCuts sets the cut budget. Panics if n < 0.
func WithMaxCuts(n int) Option {
	if n < 0 {
		panic("ilp: WithMaxCuts(n<0)")
	}
	return func(o *Options) {
		o.MaxCuts = n
	}
}

// WithMaxPivots sets the per-run pivot budget. Panics if n ≤ 0.
func WithMaxPivots(n int) Option {
	if n <= 0 {
		panic("ilp: WithMaxPivots(n<=0)")
	}
	return func(o *Options) {
		o.MaxPivots = n
	}
}

// WithTimeLimit sets the soft time budget; 0 disables it. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("ilp: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithDegenerateLimit sets the Bland fallback threshold. Panics if n < 0.
func WithDegenerateLimit(n int) Option {
	if n < 0 {
		panic("ilp: WithDegenerateLimit(n<0)")
	}
	return func(o *Options) {
		o.DegenerateLimit = n
	}
}

// WithLogger attaches a logger. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
