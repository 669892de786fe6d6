// Package cli wires the cobra commands of the showsearch binary.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/diagnostics"
)

// Version is reported to Sentry as the release. Overridden at link time.
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "showsearch",
		Short:         "Search TV shows on TVMaze",
		Long:          "ShowSearch: look up TV shows by name from a web page, a terminal UI or the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := diagnostics.Flush(2 * time.Second); err != nil {
				logger := config.GetLogger()
				logger.Warn().Err(err).Msg("Failed to flush diagnostics")
			}
		},
	}

	root.PersistentFlags().String("base-url", config.DefaultBaseURL, "TVMaze API base URL")
	root.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	bindFlags(root.PersistentFlags(), map[string]string{
		"base_url":  "base-url",
		"log_level": "log-level",
	})

	root.AddCommand(newServeCmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newSearchCmd())
	return root
}

// bindFlags maps viper keys to flags so a flag set on the command line wins
// over config.yaml and APP_* variables.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// setup reloads the configuration now that flags are parsed.
func setup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.Apply(cfg)

	if err := diagnostics.Init(cfg.SentryDSN, Version); err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Sentry disabled")
	}
	return nil
}

func newClient() (*config.Config, client.Client) {
	cfg := config.GetConfig()
	return cfg, client.NewClient(cfg)
}
