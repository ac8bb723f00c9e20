package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvhom/config"
	"github.com/katalvlaran/lvhom/filtration"
	"github.com/katalvlaran/lvhom/persistence"
)

func newComputeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <filtration_file> [output_file] [log_prefix]",
		Short: "Compute persistence intervals of a filtration file",
		Long: `compute reads the filtration, computes its persistence intervals and
writes them to output_file (default ` + config.DefaultOutput + `). Positional
output_file and log_prefix take precedence over --output and --log.`,
		Args: cobra.RangeArgs(1, 3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			if len(args) > 1 {
				a.cfg.Output = args[1]
			}
			if len(args) > 2 {
				a.cfg.LogDir = args[2]
			}

			return a.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compute(args[0])
		},
	}
	cmd.Flags().String("output", config.DefaultOutput, "interval file")
	cmd.Flags().String("log", config.DefaultLogDir, "log file prefix")
	cmd.Flags().String("format", config.DefaultFormat, "output format: text | yaml")
	cmd.Flags().String("faces", config.DefaultFaces, "missing-face policy: strict | lenient")

	return cmd
}

// compute runs load, pipeline and save, logging each step.
func (a *app) compute(input string) error {
	policy, err := a.cfg.FacePolicy()
	if err != nil {
		return err
	}
	format, err := a.cfg.OutputFormat()
	if err != nil {
		return err
	}

	a.logger.Info("reading filtration", zap.String("file", input))
	simplices, err := filtration.ReadFile(input)
	if err != nil {
		a.logger.Error("failed to read filtration", zap.String("file", input), zap.Error(err))
		return err
	}
	a.logger.Info("filtration loaded", zap.Int("simplices", len(simplices)))

	res, err := persistence.Compute(simplices,
		persistence.WithLogger(a.logger),
		persistence.WithFacePolicy(policy),
	)
	if err != nil {
		return err
	}

	if err := filtration.WriteFile(a.cfg.Output, res.Barcode, format); err != nil {
		a.logger.Error("failed to save intervals", zap.String("file", a.cfg.Output), zap.Error(err))
		return fmt.Errorf("save intervals: %w", err)
	}
	a.logger.Info("intervals saved",
		zap.String("run_id", res.Report.RunID),
		zap.String("file", a.cfg.Output),
		zap.Int("intervals", len(res.Barcode)),
		zap.Stringer("format", format),
	)

	return nil
}
