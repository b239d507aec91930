package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Report the worst case of every configured strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorstCases(cmd, opts)
		},
	}
}

func runWorstCases(cmd *cobra.Command, opts *options) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	ctx := a.context(cmd)
	defer a.abortOnDefect(ctx)

	a.log.Info(ctx, "evaluating", zap.Strings("strategies", a.cfg.Strategies))
	results, err := a.svc.Run(ctx)
	if err != nil {
		return err
	}
	if err := a.reporter.Results(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	return a.writeMetrics(cmd)
}
