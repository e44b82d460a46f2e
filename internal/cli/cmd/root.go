// Package cmd provides Cobra CLI commands for pdm.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pdm/internal/cli"
	"github.com/bnema/pdm/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "pdm",
		Short: "Terminal editor for bitcoind and p2pool configuration files",
		Long: `pdm - browse, inspect and edit daemon configuration files from the terminal.

Features:
  - Known bitcoin.conf keys grouped into sections with types, defaults and descriptions
  - p2pool.conf keys bucketed by naming convention
  - File explorer that starts in the daemon's default config directory
  - Keyboard and mouse navigation
  - Only enabled keys are written back, under "# Section" headers

Run 'pdm' or 'pdm edit' to start the interactive editor, or explore the
subcommands to print the known keys and manage pdm's own settings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEdit,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "path":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.ConfigFile, "config", "", "settings file (default $XDG_CONFIG_HOME/pdm/config.toml)")
	rootCmd.PersistentFlags().StringVar(&appOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	addEditFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
