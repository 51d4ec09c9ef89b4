package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lychanl/SumColouring/graph"
	"github.com/lychanl/SumColouring/graphio"
	"github.com/lychanl/SumColouring/solver"
)

func compareCommand() *cli.Command {
	names := make([]string, 0, len(solver.Algorithms()))
	for _, a := range solver.Algorithms() {
		names = append(names, a.String())
	}

	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"c"},
		Usage:     "Run several algorithms over graph files and print a TSV table",
		ArgsUsage: "<graph file>...",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:    AlgorithmsFlag,
				Usage:   "Algorithms to compare",
				Value:   cli.NewStringSlice(names...),
				EnvVars: []string{"SUMCOLOUR_ALGORITHMS"},
			},
		}, solverFlags()...),
		Action: runCompare,
	}
}

// runCompare prints one row per input file:
//
//	name  <alg>.result <alg>.maxc <alg>.time ...  n  m  max.deg
//
// A failing algorithm prints ERR in its three columns and the command keeps
// going; the collected failures are returned at the end.
func runCompare(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	defer logger.Sync() //nolint:errcheck

	if cCtx.NArg() == 0 {
		return errors.New("compare: no graph files")
	}

	var algos []solver.Algorithm
	for _, name := range cCtx.StringSlice(AlgorithmsFlag) {
		for _, part := range strings.Split(name, ",") {
			a, err := solver.ParseAlgorithm(strings.TrimSpace(part))
			if err != nil {
				return err
			}
			algos = append(algos, a)
		}
	}
	solvers := make([]solver.Solver, len(algos))
	for i, a := range algos {
		s, err := newSolver(cCtx, a, logger)
		if err != nil {
			return err
		}
		solvers[i] = s
	}

	w := bufio.NewWriter(cCtx.App.Writer)
	defer w.Flush()

	header := []string{"name"}
	for _, a := range algos {
		header = append(header, a.String()+".result", a.String()+".maxc", a.String()+".time")
	}
	header = append(header, "n", "m", "max.deg")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	var errs error
	for _, path := range cCtx.Args().Slice() {
		g, err := readGraphFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		row := []string{strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
		for i, s := range solvers {
			start := time.Now()
			colouring, err := s.FindColouring(g)
			elapsed := time.Since(start)
			if err == nil {
				err = graph.ValidateColouring(g, colouring)
			}
			if err != nil {
				logger.Warn("algorithm failed",
					zap.String("file", path),
					zap.Stringer("algorithm", algos[i]),
					zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("%s: %s: %w", path, algos[i], err))
				row = append(row, "ERR", "ERR", "ERR")
				continue
			}
			row = append(row,
				strconv.Itoa(graph.ChromaticSum(colouring)),
				strconv.Itoa(maxColour(colouring)),
				strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64))
		}
		row = append(row, strconv.Itoa(g.Vertices()), strconv.Itoa(g.EdgeCount()), strconv.Itoa(g.MaxDegree()))
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return errs
}

func readGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := graphio.ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
