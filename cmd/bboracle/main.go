// Package main implements the bboracle command line client.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pietro-andreoli/bboracle"
	"github.com/pietro-andreoli/bboracle/config"
	"github.com/pietro-andreoli/bboracle/logger"
)

var (
	// version is set at build time
	version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg *config.Config
	env config.Environment
	zap *zap.Logger
	log logger.Logger
}

type globalFlags struct {
	configPath string
	env        string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "bboracle",
		Short:         "Query the BestBuy API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.zap != nil {
				_ = a.zap.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file")
	cmd.PersistentFlags().StringVarP(&flags.env, "env", "e", "", "Environment (PRODUCTION or DEVELOPMENT)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", `Also log to this file ("default" for the state directory)`)

	cmd.AddCommand(newUsageCmd(a))
	cmd.AddCommand(newTokenCmd(a))
	cmd.AddCommand(newEnvCmd(a))
	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newLogoutCmd(a))

	return cmd
}

func (a *app) init(flags *globalFlags) error {
	_ = godotenv.Load()

	bootLog, err := newLogger(config.LogConfig{Level: "warn"})
	if err != nil {
		return err
	}
	cfg, err := config.Load(flags.configPath, logger.NewZap(bootLog))
	if err != nil {
		return err
	}
	if flags.env != "" {
		cfg.Environment = flags.env
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}

	zl, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.zap = zl
	a.log = logger.NewZap(zl)
	a.log.Infof("starting bboracle %s", version)

	a.env, err = cfg.ResolveEnvironment(a.log)
	if err != nil {
		return err
	}
	a.log.Infof("session started in environment %s", a.env)
	return nil
}

func (a *app) newClient() *bboracle.Client {
	httpClient := &http.Client{Timeout: a.cfg.API.Timeout}
	provider := a.cfg.NewProvider(a.env, httpClient, a.log)

	return bboracle.NewClient(
		provider,
		bboracle.WithTimeout(a.cfg.API.Timeout),
		bboracle.WithLogger(a.log),
		bboracle.WithBaseURL(a.cfg.API.BaseURL),
		bboracle.WithMinInterval(a.cfg.API.MinInterval),
		bboracle.WithTokenLifetime(a.cfg.Auth.TokenLifetime),
		bboracle.WithEarlyExpireOffset(a.cfg.Auth.EarlyExpireOffset),
	)
}
