package solver

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
)

// colourFunc is one algorithm. It receives a graph with at least one vertex.
type colourFunc func(g *graph.Graph, o Options) ([]int, error)

var algorithms = map[Algorithm]colourFunc{
	LP:         lpColouring,
	BruteForce: bruteForceColouring,
	Greedy:     greedyColouring,
	MaxSAT:     maxSATColouring,
	PBMaxSAT:   pbMaxSATColouring,
}

// dispatcher routes FindColouring to the selected algorithm and applies the
// shared policies: nil and empty graphs, component splitting, logging.
type dispatcher struct {
	algo Algorithm
	opts Options
	fn   colourFunc
}

// New returns the Solver for algo configured by opts.
//
// Errors: ErrUnknownAlgorithm.
func New(algo Algorithm, opts ...Option) (Solver, error) {
	fn, ok := algorithms[algo]
	if !ok {
		return nil, fmt.Errorf("New: %v: %w", algo, ErrUnknownAlgorithm)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = o.Logger.Named(algo.String())

	return &dispatcher{algo: algo, opts: o, fn: fn}, nil
}

// FindColouring implements Solver.
func (d *dispatcher) FindColouring(g *graph.Graph) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("FindColouring: %w", ErrNilGraph)
	}
	if g.Vertices() == 0 {
		return []int{}, nil
	}

	start := time.Now()
	var (
		colouring []int
		err       error
	)
	if d.opts.SplitComponents {
		colouring, err = d.byComponents(g)
	} else {
		colouring, err = d.fn(g, d.opts)
	}
	if err != nil {
		return nil, fmt.Errorf("FindColouring(%s): %w", d.algo, err)
	}

	d.opts.Logger.Debug("colouring found",
		zap.Int("vertices", g.Vertices()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("maxColours", graph.MaxColours(g)),
		zap.Int("sum", graph.ChromaticSum(colouring)),
		zap.Duration("elapsed", time.Since(start)))

	return colouring, nil
}

// byComponents solves every connected component separately and maps the
// colours back to the original numbering. Isolated vertices get colour 1
// without calling the algorithm.
func (d *dispatcher) byComponents(g *graph.Graph) ([]int, error) {
	out := make([]int, g.Vertices())
	for k, comp := range graph.Components(g) {
		if comp.Graph.EdgeCount() == 0 {
			for _, v := range comp.Vertices {
				out[v-1] = 1
			}
			continue
		}
		part, err := d.fn(comp.Graph, d.opts)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", k, err)
		}
		for i, v := range comp.Vertices {
			out[v-1] = part[i]
		}
	}
	return out, nil
}
