package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lychanl/SumColouring/builder"
	"github.com/lychanl/SumColouring/graphio"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     "Print a generated graph",
		ArgsUsage: "<" + strings.Join(builder.Kinds(), "|") + "> <p1> [p2]",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    SeedFlag,
				Usage:   "Seed for random kinds",
				Value:   1,
				EnvVars: []string{"SUMCOLOUR_SEED"},
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(cCtx *cli.Context) error {
	args := cCtx.Args()
	kind := args.First()
	want := builder.KindParams(kind)
	if want == 0 {
		_, err := builder.ByKind(kind, 0, 0)
		return err
	}
	if args.Len() != want+1 {
		return fmt.Errorf("generate %s: want %d parameters, got %d", kind, want, args.Len()-1)
	}

	params := [2]int{}
	for k := 0; k < want; k++ {
		n, err := strconv.Atoi(args.Get(k + 1))
		if err != nil {
			return fmt.Errorf("generate %s: parameter %d: %w", kind, k+1, err)
		}
		params[k] = n
	}

	cons, err := builder.ByKind(kind, params[0], params[1])
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cCtx.Int64(SeedFlag))}, cons)
	if err != nil {
		return err
	}

	return graphio.WriteGraph(cCtx.App.Writer, g)
}
