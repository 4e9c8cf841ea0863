package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pietro-andreoli/bboracle/auth"
	"github.com/pietro-andreoli/bboracle/config"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds auth.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for the current environment in the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.keyringStore()
			if err != nil {
				return err
			}
			if err := store.Save(creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s credentials for %s\n", a.env, creds.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "API username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "API password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials for the current environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.keyringStore()
			if err != nil {
				return err
			}
			if err := store.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s credentials\n", a.env)
			return nil
		},
	}
}

// keyringStore refuses to touch the keyring when the client would not read
// credentials from it.
func (a *app) keyringStore() (*config.KeyringCredentials, error) {
	if a.cfg.Credentials.Store != config.StoreKeyring {
		return nil, fmt.Errorf(
			"credentials.store is %q; set it to %q (or BBORACLE_CREDENTIALS_STORE=%s) to use login",
			a.cfg.Credentials.Store, config.StoreKeyring, config.StoreKeyring,
		)
	}
	return config.NewKeyringCredentials(a.cfg.Credentials.KeyringService, a.env), nil
}
