package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/filtration"
)

type generateFlags struct {
	out    string
	offset int
	maxDim int
	p      float64
	seed   int64
	time   string
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:       "generate ball|sphere|cycle|path|wheel|complete|random <n>",
		Short:     "Write a synthetic filtration",
		ValidArgs: []string{"ball", "sphere", "cycle", "path", "wheel", "complete", "random"},
		Args:      cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			// generate only logs to stderr.
			a.cfg.LogDir = ""

			return a.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("n: %w", err)
			}
			if gf.offset < 0 {
				return fmt.Errorf("--offset must be >= 0, got %d", gf.offset)
			}
			cons, err := gf.constructor(args[0], n)
			if err != nil {
				return err
			}
			timeFn, err := parseTimeFn(gf.time)
			if err != nil {
				return err
			}

			opts := []builder.BuilderOption{
				builder.WithVertexOffset(gf.offset),
				builder.WithSeed(gf.seed),
				builder.WithTimeFn(timeFn),
			}
			fs, err := builder.Build(opts, cons)
			if err != nil {
				return err
			}
			if err := writeSimplices(cmd.OutOrStdout(), gf.out, fs); err != nil {
				return err
			}
			a.logger.Debug("filtration generated",
				zap.String("kind", args[0]), zap.Int("n", n), zap.Int("simplices", len(fs)))

			return nil
		},
	}
	cmd.Flags().StringVar(&gf.out, "out", "", "output file (default stdout)")
	cmd.Flags().IntVar(&gf.offset, "offset", 0, "first vertex id")
	cmd.Flags().IntVar(&gf.maxDim, "max-dim", 2, "top dimension for complete and random")
	cmd.Flags().Float64Var(&gf.p, "p", 0.5, "edge probability for random")
	cmd.Flags().Int64Var(&gf.seed, "seed", 1, "seed for random")
	cmd.Flags().StringVar(&gf.time, "time", "uniform",
		"edge times for random: uniform[:min,max] | exp:rate | normal:mean,stddev | const:t")

	return cmd
}

func (gf generateFlags) constructor(kind string, n int) (builder.Constructor, error) {
	switch kind {
	case "ball":
		return builder.Ball(n), nil
	case "sphere":
		return builder.Sphere(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n, gf.maxDim), nil
	case "random":
		return builder.RandomClique(n, gf.p, gf.maxDim), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// parseTimeFn resolves a --time value such as "exp:2" or "uniform:0,5".
// Parameters are checked here so the builder constructors never panic.
func parseTimeFn(spec string) (builder.TimeFn, error) {
	name, rawArgs, _ := strings.Cut(spec, ":")
	var args []float64
	if rawArgs != "" {
		for _, f := range strings.Split(rawArgs, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("--time %q: %w", spec, err)
			}
			args = append(args, v)
		}
	}
	bad := func(want string) error {
		return fmt.Errorf("--time %q: want %s", spec, want)
	}

	switch name {
	case "uniform":
		if len(args) == 0 {
			return builder.DefaultTimeFn, nil
		}
		if len(args) != 2 || !(args[0] >= 0) || !(args[1] >= args[0]) {
			return nil, bad("uniform:min,max with 0 <= min <= max")
		}
		return builder.UniformTimeFn(args[0], args[1]), nil
	case "exp":
		if len(args) != 1 || !(args[0] > 0) {
			return nil, bad("exp:rate with rate > 0")
		}
		return builder.ExponentialTimeFn(args[0]), nil
	case "normal":
		if len(args) != 2 || !(args[1] >= 0) {
			return nil, bad("normal:mean,stddev with stddev >= 0")
		}
		return builder.NormalTimeFn(args[0], args[1]), nil
	case "const":
		if len(args) != 1 || !(args[0] >= 0) {
			return nil, bad("const:t with t >= 0")
		}
		return builder.ConstantTimeFn(args[0]), nil
	default:
		return nil, bad("uniform, exp, normal or const")
	}
}

// writeSimplices writes fs to path, or to stdout when path is empty.
func writeSimplices(stdout io.Writer, path string, fs []core.Simplex) (err error) {
	if path == "" {
		return filtration.WriteSimplices(stdout, fs)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return filtration.WriteSimplices(f, fs)
}
