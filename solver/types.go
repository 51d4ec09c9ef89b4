package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/ilp"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph indicates a nil *graph.Graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrUnknownAlgorithm indicates a name ParseAlgorithm does not recognise
	// or an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrExtraction indicates an optimum that does not decode to exactly one
	// colour per vertex. On the LP path it comes together with ilp.ErrNumeric.
	ErrExtraction = errors.New("solver: invalid solution extraction")

	// ErrTooLarge indicates a graph above Options.BruteForceMaxVertices.
	ErrTooLarge = errors.New("solver: graph too large for brute force")

	// ErrCoreLimit indicates Options.MaxSATMaxCores unsat cores were relaxed
	// without reaching a model.
	ErrCoreLimit = errors.New("solver: unsat core limit reached")

	// ErrUnsatisfiable indicates the hard colouring constraints have no model.
	ErrUnsatisfiable = errors.New("solver: hard constraints unsatisfiable")
)

// Solver computes a minimum chromatic-sum colouring.
//
// colouring[i] is the colour of vertex i+1; adjacent vertices differ and
// every colour lies in [1, graph.MaxColours(g)]. Implementations keep no
// state between calls and may be shared between goroutines.
type Solver interface {
	FindColouring(g *graph.Graph) ([]int, error)
}

// Algorithm selects a Solver implementation.
type Algorithm int

const (
	// LP is the exact integer program solved by simplex and Gomory cuts.
	LP Algorithm = iota
	// BruteForce enumerates colourings with branch-and-bound pruning.
	BruteForce
	// Greedy colours successive greedy independent sets; not optimal.
	Greedy
	// MaxSAT is core-guided weighted MaxSAT on the gini SAT solver.
	MaxSAT
	// PBMaxSAT hands the weighted MaxSAT encoding to gophersat.
	PBMaxSAT
)

var algorithmNames = [...]string{
	LP:         "lp",
	BruteForce: "bruteforce",
	Greedy:     "greedy",
	MaxSAT:     "maxsat",
	PBMaxSAT:   "pbmaxsat",
}

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("ParseAlgorithm: %q (want one of %s): %w",
		name, strings.Join(algorithmNames[:], ","), ErrUnknownAlgorithm)
}

// Defaults for Options.
const (
	DefaultBruteForceMaxVertices = 12
	DefaultMaxSATMaxCores        = 100000
)

// Options configures every solver. Fields a solver does not use are ignored.
//
//	Logger, Ctx           – shared diagnostics and cancellation.
//	MaxCuts, MaxPivots,
//	DegenerateLimit       – LP budgets, passed through to package ilp.
//	TimeLimit             – wall-clock budget of LP and MaxSAT.
//	BruteForceMaxVertices – largest V BruteForce accepts.
//	MaxSATMaxCores        – unsat cores MaxSAT may relax.
//	SplitComponents       – solve each connected component on its own.
type Options struct {
	Logger *zap.Logger
	Ctx    context.Context

	MaxCuts         int
	MaxPivots       int
	TimeLimit       time.Duration
	DegenerateLimit int

	BruteForceMaxVertices int
	MaxSATMaxCores        int

	SplitComponents bool
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the ilp defaults for the LP budgets,
// DefaultBruteForceMaxVertices, DefaultMaxSATMaxCores, no component
// splitting, a no-op logger and a background context.
func DefaultOptions() Options {
	lp := ilp.DefaultOptions()
	return Options{
		Logger:                zap.NewNop(),
		Ctx:                   context.Background(),
		MaxCuts:               lp.MaxCuts,
		MaxPivots:             lp.MaxPivots,
		TimeLimit:             lp.TimeLimit,
		DegenerateLimit:       lp.DegenerateLimit,
		BruteForceMaxVertices: DefaultBruteForceMaxVertices,
		MaxSATMaxCores:        DefaultMaxSATMaxCores,
	}
}

// WithLogger attaches a logger. Nil restores the no-op default.
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

// WithMaxCuts sets the LP cut budget. Panics if n < 0.
func WithMaxCuts(n int) Option {
	if n < 0 {
		panic("solver: WithMaxCuts(n<0)")
	}
	return func(o *Options) { o.MaxCuts = n }
}

// WithMaxPivots sets the LP per-run pivot budget. Panics if n ≤ 0.
func WithMaxPivots(n int) Option {
	if n <= 0 {
		panic("solver: WithMaxPivots(n<=0)")
	}
	return func(o *Options) { o.MaxPivots = n }
}

// WithTimeLimit sets the time budget of LP and MaxSAT; both fail with
// ilp.ErrTimeLimit when it runs out. 0 disables it. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("solver: WithTimeLimit(d<0)")
	}
	return func(o *Options) { o.TimeLimit = d }
}

// WithDegenerateLimit sets the LP Bland fallback threshold. Panics if n < 0.
func WithDegenerateLimit(n int) Option {
	if n < 0 {
		panic("solver: WithDegenerateLimit(n<0)")
	}
	return func(o *Options) { o.DegenerateLimit = n }
}

// WithBruteForceMaxVertices sets the BruteForce size guard. Panics if n < 1.
func WithBruteForceMaxVertices(n int) Option {
	if n < 1 {
		panic("solver: WithBruteForceMaxVertices(n<1)")
	}
	return func(o *Options) { o.BruteForceMaxVertices = n }
}

// WithMaxSATMaxCores sets the MaxSAT core budget. Panics if n < 1.
func WithMaxSATMaxCores(n int) Option {
	if n < 1 {
		panic("solver: WithMaxSATMaxCores(n<1)")
	}
	return func(o *Options) { o.MaxSATMaxCores = n }
}

// WithSplitComponents enables or disables per-component solving. The
// objective is additive over components, so optimality is preserved.
func WithSplitComponents(on bool) Option {
	return func(o *Options) { o.SplitComponents = on }
}

// ilpOptions translates the LP fields into package ilp options.
func (o Options) ilpOptions() []ilp.Option {
	return []ilp.Option{
		ilp.WithMaxCuts(o.MaxCuts),
		ilp.WithMaxPivots(o.MaxPivots),
		ilp.WithTimeLimit(o.TimeLimit),
		ilp.WithDegenerateLimit(o.DegenerateLimit),
		ilp.WithLogger(o.Logger.Named("ilp")),
		ilp.WithContext(o.Ctx),
	}
}
