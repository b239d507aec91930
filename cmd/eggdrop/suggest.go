package main

import "github.com/spf13/cobra"

func newSuggestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Evaluate tuned chunked and shrinking parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			ctx := a.context(cmd)
			defer a.abortOnDefect(ctx)

			results, err := a.svc.Suggest(ctx)
			if err != nil {
				return err
			}
			if err := a.reporter.Results(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return a.writeMetrics(cmd)
		},
	}
}
