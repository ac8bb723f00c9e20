package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvhom/config"
)

// app carries state shared by subcommands of one invocation.
type app struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

// newRootCmd assembles a fresh command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvhom",
		Short: "Persistent homology of simplicial filtrations over GF(2)",
		Long: `lvhom reads a filtration (one simplex per line: value dim v0 … vdim),
builds its boundary matrix, reduces it over the two-element field and writes
the persistence intervals as "dim start end" lines ("inf" when a feature
never dies).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().Bool("verbose", false, "debug-level logging")

	root.AddCommand(newComputeCmd(a), newGenerateCmd(a), newVersionCmd())

	return root
}

// loadConfig resolves a.cfg from --config, environment and cmd's flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// initLogger builds the production zap logger: JSON to stderr and to
// <log prefix>lvhom.log, debug level when verbose.
func (a *app) initLogger() error {
	zcfg := zap.NewProductionConfig()
	if a.cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zcfg.OutputPaths = []string{"stderr"}
	if a.cfg.LogDir != "" {
		logPath := a.cfg.LogDir + "lvhom.log"
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("log directory: %w", err)
		}
		zcfg.OutputPaths = append(zcfg.OutputPaths, logPath)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvhom version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lvhom", version)
		},
	}
}
