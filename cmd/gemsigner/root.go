package main

import (
	"github.com/spf13/cobra"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagKeyEnv    = "key-env"

	defaultKeyEnv = "GEM_VALIDATOR_KEY"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gemsigner",
		Short:         "Issue and check validator approvals for gem mints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(flagLogFormat, "console", "log format (console or json)")
	rootCmd.PersistentFlags().String(flagKeyEnv, defaultKeyEnv, "environment variable holding the hex encoded validator key")

	InitRootCmd(rootCmd)

	return rootCmd
}
