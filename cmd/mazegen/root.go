package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/logger"
	"github.com/katalvlaran/lvmaze/internal/metrics"
	"github.com/katalvlaran/lvmaze/store"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand for one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mazegen",
		Short:         "Generate mazes on square, triangle, hex, polar and weave grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			err := a.flushMetrics()
			if cerr := logger.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "mazegen.yaml", "configuration file (missing file means defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		newGenerateCmd(a),
		newRenderCmd(a),
		newHistoryCmd(a),
		newAlgorithmsCmd(),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := logger.InitializeWriter(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Logger().With("command", cmd.Name())
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New()
	}
	a.log.Debug("configuration loaded", "path", a.configPath)
	return nil
}

func (a *app) flushMetrics() error {
	if a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", a.cfg.Metrics.TextfilePath)
	return nil
}

// failure counts err against stage when metrics are on and returns it.
func (a *app) failure(stage string, err error) error {
	if a.metrics != nil {
		a.metrics.Failure(stage)
	}
	a.log.Error("command failed", "stage", stage, "error", err)
	return err
}

// openStore opens the archive named by the configuration.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	s, err := store.Open(ctx, a.cfg.Store)
	if err != nil {
		return nil, a.failure("store", fmt.Errorf("open archive: %w", err))
	}
	return s, nil
}
