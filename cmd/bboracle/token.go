package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pietro-andreoli/bboracle/auth"
)

func newTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Authenticate and show the issued token's details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client := a.newClient()
			if err := client.Authenticate(ctx); err != nil {
				return err
			}

			lc := client.Lifecycle()
			expiry, err := lc.ExpiryTime()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state:      %s\n", lc.State())
			fmt.Fprintf(out, "issued at:  %s\n", lc.Token().IssuedAt().Format(time.RFC3339))
			fmt.Fprintf(out, "expires at: %s\n", expiry.Format(time.RFC3339))

			value, _ := lc.TokenValue()
			claims, err := auth.ParseClaims(value)
			if err != nil {
				fmt.Fprintln(out, "claims:     opaque token")
				return nil
			}
			fmt.Fprintf(out, "subject:    %s\n", claims.Subject)
			fmt.Fprintf(out, "issuer:     %s\n", claims.Issuer)
			if !claims.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "server exp: %s\n", claims.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
