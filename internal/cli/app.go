// Package cli wires pdm's dependencies for the cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/application/usecase"
	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/domain/build"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/infrastructure/config"
	"github.com/bnema/pdm/internal/infrastructure/daemonpath"
	"github.com/bnema/pdm/internal/infrastructure/daemonschema"
	"github.com/bnema/pdm/internal/infrastructure/filesystem"
	"github.com/bnema/pdm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info

	FS      port.FileSystem
	Schemas port.ConfigSchemaProvider
	Paths   port.DefaultPathResolver

	// Use cases
	LoadConfigUC      *usecase.LoadConfigUseCase
	SaveConfigUC      *usecase.SaveConfigUseCase
	GetConfigSchemaUC *usecase.GetConfigSchemaUseCase
	ResolveStartDirUC *usecase.ResolveStartDirUseCase

	// Context with logger
	ctx        context.Context
	logLevel   string
	logCleanup func()
}

// Options are the global flags that influence App construction.
type Options struct {
	// ConfigFile replaces the XDG settings file when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	cfg, cfgFile, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	logLevel := effectiveLogLevel(cfg, opts)
	logCfg := logging.ConfigFromEnv(logging.Config{
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	// PDM_LOG_LEVEL already reached cfg through viper; the flag beats it.
	logCfg.Level = logging.ParseLevel(logLevel)
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	fs := filesystem.New()
	schemas := daemonschema.NewProvider()
	paths := daemonpath.New(map[entity.DaemonRole]string{
		entity.DaemonRoleBitcoin: cfg.Paths.BitcoinConf,
		entity.DaemonRoleP2Pool:  cfg.Paths.P2PoolConf,
	})

	logger.Debug().Str("config_file", cfgFile).Msg("settings loaded")

	return &App{
		Config:            cfg,
		ConfigFile:        cfgFile,
		Theme:             styles.NewTheme(cfg),
		FS:                fs,
		Schemas:           schemas,
		Paths:             paths,
		LoadConfigUC:      usecase.NewLoadConfigUseCase(fs, schemas),
		SaveConfigUC:      usecase.NewSaveConfigUseCase(fs),
		GetConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(schemas),
		ResolveStartDirUC: usecase.NewResolveStartDirUseCase(fs, paths),
		ctx:               ctx,
		logLevel:          logLevel,
		logCleanup:        func() {},
	}, nil
}

// SessionLogger replaces the terminal logger with the file logger used while
// the full-screen session owns the terminal. The returned context carries it.
func (a *App) SessionLogger() (context.Context, *zerolog.Logger) {
	cfg := logging.Config{
		Level:      logging.ParseLevel(a.logLevel),
		Format:     logging.FormatJSON,
		TimeFormat: "15:04:05",
	}
	logger, cleanup, err := logging.NewWithFile(cfg, logging.FileConfig{
		Enabled: a.Config.Logging.EnableFileLog,
		Dir:     a.Config.Logging.LogDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return a.ctx, logging.FromContext(a.ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the logger carried by Ctx.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// effectiveLogLevel returns the --log-level flag when set, else logging.level.
func effectiveLogLevel(cfg *config.Config, opts Options) string {
	if opts.LogLevel != "" {
		return opts.LogLevel
	}
	return cfg.Logging.Level
}

// loadConfig loads settings from path, or from the standard locations when
// path is empty. A missing standard file yields the defaults.
func loadConfig(path string) (*config.Config, string, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		mgr.SetConfigFile(path)
	}

	if err := mgr.Load(); err != nil {
		return nil, "", fmt.Errorf("load settings: %w", err)
	}
	return mgr.Get(), mgr.GetConfigFile(), nil
}
