package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pietro-andreoli/bboracle/retry"
	"github.com/pietro-andreoli/bboracle/types"
)

func newUsageCmd(a *app) *cobra.Command {
	var retries int

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show the account's API usage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client := a.newClient()

			var usage types.ResponseBody
			r := retry.NewExponentialRetry(retry.WithLogger(a.log))
			err := r.Do(retries, "usage", func(attempt int) (error, retry.ExitStrategy) {
				var err error
				usage, err = client.Usage(ctx)
				return err, retry.Classify(err)
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(usage)
		},
	}

	cmd.Flags().IntVar(&retries, "retries", 1, "Attempts for transient failures")
	return cmd
}
