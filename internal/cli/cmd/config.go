package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pdm's own settings",
	Long: `Inspect and create pdm's settings file.

These settings control pdm itself (colors, logging, explorer and editor
behavior, default daemon config locations). They never touch bitcoin.conf or
p2pool.conf.`,
	RunE: runConfigStatus,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Long: `Write the default settings to the settings file.

An existing file is only replaced after confirmation, or with --yes.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the settings file",
	Long: `Print the JSON Schema of the settings file, for editor completion.

Example:
  pdm config schema > ~/.config/pdm/config.schema.json`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

// runConfigStatus shows the settings file path and whether it exists.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	exists, err := fileExists(app.ConfigFile)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderConfigInfo(app.ConfigFile, exists))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.ConfigFile
	log := app.Logger()

	exists, err := fileExists(path)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if exists && !configYes {
		overwrite, err := confirmOverwrite(app.Theme, path)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(renderer.RenderKept(path))
			return nil
		}
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write settings")
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	log.Debug().Str("path", path).Msg("default settings written")
	fmt.Println(renderer.RenderCreated(path))
	return nil
}

// confirmOverwrite asks before replacing an existing settings file.
func confirmOverwrite(theme *styles.Theme, path string) (bool, error) {
	confirm := styles.NewConfirm(theme, fmt.Sprintf("%s exists. Replace it with the defaults?", path))

	final, err := tea.NewProgram(confirm).Run()
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	result, ok := final.(styles.ConfirmModel)
	return ok && result.Result(), nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	if appOpts.ConfigFile != "" {
		fmt.Println(appOpts.ConfigFile)
		return nil
	}

	path, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	data, err := config.EncodeConfigOrdered(app.Config)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.GenerateJSONSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}
