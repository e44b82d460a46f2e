package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/cli/model"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/infrastructure/watcher"
	"github.com/bnema/pdm/internal/logging"
)

var errNoTerminal = errors.New("the editor needs an interactive terminal")

var editRole string

var editCmd = &cobra.Command{
	Use:   "edit [path]",
	Short: "Open the interactive configuration editor",
	Long: `Open the full-screen configuration editor.

Without a path the session starts on the home screen; pick a daemon in the
sidebar and choose its file in the explorer. With a path the file opens
directly in the editor; Esc returns to the daemon's screen.

The daemon is taken from --role, or guessed from the file name
(p2pool.conf is p2pool, anything else is bitcoin).

Keys:
  ↑/↓ j/k        move
  ←/→ h/l tab    switch section
  space          include or exclude the key on save
  enter          open, flip a boolean, or edit a value
  ctrl+s         save
  esc            back
  q / ctrl+c     quit

Space only applies to known bitcoin.conf keys. Custom keys (the "Custom"
section, and every p2pool.conf key) are always written on save; delete
such a line from the file by hand to drop it.

Examples:
  pdm edit                              # Start on the home screen
  pdm edit ~/.bitcoin/bitcoin.conf      # Open a file directly
  pdm edit ./node.conf --role p2pool    # Force the p2pool layout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	addEditFlags(editCmd)
}

func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&editRole, "role", "r", "", "daemon of the file: bitcoin or p2pool")
}

func runEdit(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	cfg := model.AppModelConfig{
		FS:              app.FS,
		LoadConfigUC:    app.LoadConfigUC,
		SaveConfigUC:    app.SaveConfigUC,
		ResolveStartDir: app.ResolveStartDirUC,
		StartDir:        app.Config.Explorer.StartDir,
		ShowHidden:      app.Config.Explorer.ShowHidden,
	}

	if len(args) == 1 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		role, err := editRoleFor(path, editRole)
		if err != nil {
			return err
		}
		cfg.InitialPath = path
		cfg.InitialRole = role
	} else if editRole != "" {
		if _, err := entity.ParseDaemonRole(editRole); err != nil {
			return err
		}
	}

	ctx, logger := app.SessionLogger()
	ctx = logging.WithComponent(ctx, "session")
	defer logging.RecoverPanic(logger)

	if app.Config.Editor.WatchFile {
		w, closeWatcher := newWatcher(ctx)
		defer closeWatcher()
		if w != nil {
			cfg.Watcher = w
		}
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if app.Config.Editor.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info().Str("path", cfg.InitialPath).Msg("session started")

	m := model.NewAppModel(ctx, app.Theme, cfg)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run editor: %w", err)
	}

	logger.Info().Msg("session ended")
	return nil
}

// newWatcher returns nil when the platform cannot watch files; the session
// then runs without change notifications.
func newWatcher(ctx context.Context) (port.FileWatcher, func()) {
	log := logging.FromContext(ctx)

	w, err := watcher.New()
	if err != nil {
		log.Warn().Err(err).Msg("file watching disabled")
		return nil, func() {}
	}
	return w, func() {
		if err := w.Close(); err != nil {
			log.Debug().Err(err).Msg("close watcher")
		}
	}
}

// editRoleFor returns the role named by flag, or the role guessed from the file name.
func editRoleFor(path, flag string) (entity.DaemonRole, error) {
	if flag != "" {
		return entity.ParseDaemonRole(flag)
	}
	if strings.HasPrefix(strings.ToLower(filepath.Base(path)), "p2pool") {
		return entity.DaemonRoleP2Pool, nil
	}
	return entity.DaemonRoleBitcoin, nil
}
