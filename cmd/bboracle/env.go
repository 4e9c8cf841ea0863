package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pietro-andreoli/bboracle/config"
)

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the resolved environment and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "environment:  %s\n", a.env)
			fmt.Fprintf(out, "api:          %s\n", a.cfg.API.BaseURL)
			fmt.Fprintf(out, "min interval: %s\n", a.cfg.API.MinInterval)
			fmt.Fprintf(out, "auth mode:    %s\n", a.cfg.Auth.Mode)
			if a.cfg.Credentials.Store == config.StoreKeyring {
				fmt.Fprintf(out, "credentials:  keyring (%s)\n", a.cfg.Credentials.KeyringService)
			} else {
				fmt.Fprintf(out, "credentials:  %s\n", a.cfg.Paths.Credentials)
			}
			return nil
		},
	}
}
