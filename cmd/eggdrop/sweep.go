package main

import (
	"github.com/spf13/cobra"

	"svw.info/eggdrop/internal/domain"
)

func newSweepCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <linear|chunked|shrinking>",
		Short: "Show the probe count of one strategy at every threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			ctx := a.context(cmd)
			defer a.abortOnDefect(ctx)

			s, cases, err := a.svc.Sweep(ctx, kind)
			if err != nil {
				return err
			}
			if err := a.reporter.Sweep(cmd.OutOrStdout(), s.String(), cases); err != nil {
				return err
			}
			return a.writeMetrics(cmd)
		},
	}
}
