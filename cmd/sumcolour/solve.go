package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/graphio"
	"github.com/lychanl/SumColouring/solver"
)

// solverFlags are shared by solve and compare.
func solverFlags() []cli.Flag {
	lp := solver.DefaultOptions()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    MaxCutsFlag,
			Usage:   "Gomory cut budget of the lp solver",
			Value:   lp.MaxCuts,
			EnvVars: []string{"SUMCOLOUR_MAX_CUTS"},
		},
		&cli.IntFlag{
			Name:    MaxPivotsFlag,
			Usage:   "Pivot budget per simplex run of the lp solver",
			Value:   lp.MaxPivots,
			EnvVars: []string{"SUMCOLOUR_MAX_PIVOTS"},
		},
		&cli.DurationFlag{
			Name:    TimeLimitFlag,
			Usage:   "Wall-clock budget of the lp and maxsat solvers (0 disables)",
			EnvVars: []string{"SUMCOLOUR_TIME_LIMIT"},
		},
		&cli.BoolFlag{
			Name:    SplitComponentsFlag,
			Usage:   "Solve each connected component separately",
			EnvVars: []string{"SUMCOLOUR_SPLIT_COMPONENTS"},
		},
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:    "solve",
		Aliases: []string{"s"},
		Usage:   "Colour one graph and print \"vertex colour\" lines",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    AlgorithmFlag,
				Aliases: []string{"a"},
				Usage:   "One of lp, bruteforce, greedy, maxsat, pbmaxsat",
				Value:   solver.LP.String(),
				EnvVars: []string{"SUMCOLOUR_ALGORITHM"},
			},
			&cli.StringFlag{
				Name:    InputFlag,
				Aliases: []string{"i"},
				Usage:   "Graph file (default stdin)",
			},
			&cli.StringFlag{
				Name:    OutputFlag,
				Aliases: []string{"o"},
				Usage:   "Colouring file (default stdout)",
			},
		}, solverFlags()...),
		Action: runSolve,
	}
}

func runSolve(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	defer logger.Sync() //nolint:errcheck

	algo, err := solver.ParseAlgorithm(cCtx.String(AlgorithmFlag))
	if err != nil {
		return err
	}
	s, err := newSolver(cCtx, algo, logger)
	if err != nil {
		return err
	}

	in := cCtx.App.Reader
	if path := cCtx.String(InputFlag); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	g, err := graphio.ReadGraph(in)
	if err != nil {
		return err
	}

	colouring, err := s.FindColouring(g)
	if err != nil {
		return err
	}
	if err := graph.ValidateColouring(g, colouring); err != nil {
		return fmt.Errorf("%s produced an invalid colouring: %w", algo, err)
	}

	if err := writeColouring(cCtx.App.Writer, cCtx.String(OutputFlag), colouring); err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.ErrWriter, "%d %d\n", maxColour(colouring), graph.ChromaticSum(colouring))
	return nil
}

// newSolver applies the shared solver flags.
func newSolver(cCtx *cli.Context, algo solver.Algorithm, logger *zap.Logger) (solver.Solver, error) {
	if cCtx.Int(MaxCutsFlag) < 0 {
		return nil, fmt.Errorf("--%s must be >= 0", MaxCutsFlag)
	}
	if cCtx.Int(MaxPivotsFlag) <= 0 {
		return nil, fmt.Errorf("--%s must be > 0", MaxPivotsFlag)
	}
	if cCtx.Duration(TimeLimitFlag) < 0 {
		return nil, fmt.Errorf("--%s must be >= 0", TimeLimitFlag)
	}

	return solver.New(algo,
		solver.WithLogger(logger),
		solver.WithContext(cCtx.Context),
		solver.WithMaxCuts(cCtx.Int(MaxCutsFlag)),
		solver.WithMaxPivots(cCtx.Int(MaxPivotsFlag)),
		solver.WithTimeLimit(cCtx.Duration(TimeLimitFlag)),
		solver.WithSplitComponents(cCtx.Bool(SplitComponentsFlag)),
	)
}

// writeColouring writes to path, or to w when path is empty. A file is
// closed before returning so a failed flush is reported.
func writeColouring(w io.Writer, path string, colouring []int) error {
	if path == "" {
		return graphio.WriteColouring(w, colouring)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graphio.WriteColouring(f, colouring); err != nil {
		return multierr.Append(err, f.Close())
	}
	return f.Close()
}

func maxColour(colouring []int) int {
	m := 0
	for _, c := range colouring {
		if c > m {
			m = c
		}
	}
	return m
}
