// Package main implements the eggdrop CLI, which scores two-item threshold
// search strategies by their worst-case probe count.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/eggdrop/internal/adapters/report"
	"svw.info/eggdrop/internal/config"
	"svw.info/eggdrop/internal/infrastructure/metrics"
	"svw.info/eggdrop/internal/logging"
	"svw.info/eggdrop/internal/ports"
	"svw.info/eggdrop/internal/strategy"
	"svw.info/eggdrop/internal/usecase"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the persistent flags; unset flags leave the config untouched.
type options struct {
	configPath string
	format     string
	metrics    bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "eggdrop",
		Short: "Compare two-item threshold search strategies",
		Long: `eggdrop runs every configured strategy against each possible hidden
threshold in a 100-level domain, plus the case where nothing ever breaks,
and reports the most probes each strategy needed.

The report (and --metrics output) is written to stdout. Logs, including one
"worst case found" line per strategy and the diagnostic of a strategy that
answers wrong or runs out of items, are written to stderr.

Examples:
  # Worst cases of the built-in strategies
  eggdrop

  # Probe counts of the shrinking strategy at every threshold
  eggdrop sweep shrinking

  # Tuned parameters and their expected bound
  eggdrop suggest --format json`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorstCases(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.format, "format", "", "report format: text|json")
	flags.BoolVar(&opts.metrics, "metrics", false, "append Prometheus metrics to the report")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "", "console|json")

	root.AddCommand(newRunCmd(opts), newSweepCmd(opts), newSuggestCmd(opts))
	return root
}

// app is everything a subcommand needs, wired from config.
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *prometheus.Registry
	svc      *usecase.Service
	reporter ports.Reporter
}

func setup(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Report.Format = opts.format
	}
	if flags.Changed("metrics") {
		cfg.Report.Metrics = opts.metrics
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.NewLogger(&cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}
	strategies := make([]ports.Strategy, 0, len(kinds))
	for _, kind := range kinds {
		s, err := strategy.Build(kind, cfg.Params())
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}

	reporter, err := report.New(cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &app{
		cfg:      cfg,
		log:      log,
		registry: reg,
		svc:      usecase.NewService(strategies, metrics.New(reg), log),
		reporter: reporter,
	}, nil
}

// context tags the command context with a fresh run id.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRunID(ctx, uuid.NewString())
}

// abortOnDefect logs a strategy defect before letting the panic continue.
func (a *app) abortOnDefect(ctx context.Context) {
	if r := recover(); r != nil {
		a.log.Error(ctx, "strategy defect, aborting", zap.Any("panic", r))
		_ = a.log.Sync()
		panic(r)
	}
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	if !a.cfg.Report.Metrics {
		return nil
	}
	return report.Metrics(cmd.OutOrStdout(), a.registry)
}
