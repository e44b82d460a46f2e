// Package config loads pdm's own settings with Viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Manager handles settings loading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/pdm/config.toml.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(afero.NewOsFs(), configDir, true)
}

// NewManagerWithFs creates a manager reading configDir/config.toml from fs.
// The current directory is not searched.
func NewManagerWithFs(fs afero.Fs, configDir string) (*Manager, error) {
	return newManager(fs, configDir, false)
}

func newManager(fs afero.Fs, configDir string, searchCwd bool) (*Manager, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	if searchCwd {
		v.AddConfigPath(".") // Current directory for development
	}

	v.SetEnvPrefix("PDM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.ConfigFromEnv.
	if err := v.BindEnv("logging.level", "PDM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PDM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PDM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PDM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// SetConfigFile reads settings from path instead of the search paths.
// A missing explicit file is an error.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
}

// Load loads the settings from file and environment variables.
// A missing settings file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) {
		return nil
	}

	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFileLocked(), err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFileLocked(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", "text", "console":
		config.Logging.Format = "console"
	case "json":
		config.Logging.Format = "json"
	}

	config.Explorer.StartDir = strings.TrimSpace(config.Explorer.StartDir)
	config.Paths.BitcoinConf = strings.TrimSpace(config.Paths.BitcoinConf)
	config.Paths.P2PoolConf = strings.TrimSpace(config.Paths.P2PoolConf)
}

// Get returns a copy of the loaded settings, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the settings file in use, or where it would be created.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFileLocked()
}

// configFileLocked is GetConfigFile for callers already holding the lock.
func (m *Manager) configFileLocked() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	palette := defaults.Appearance.DarkPalette
	m.viper.SetDefault("appearance.dark_palette.background", palette.Background)
	m.viper.SetDefault("appearance.dark_palette.surface", palette.Surface)
	m.viper.SetDefault("appearance.dark_palette.surface_variant", palette.SurfaceVariant)
	m.viper.SetDefault("appearance.dark_palette.text", palette.Text)
	m.viper.SetDefault("appearance.dark_palette.muted", palette.Muted)
	m.viper.SetDefault("appearance.dark_palette.accent", palette.Accent)
	m.viper.SetDefault("appearance.dark_palette.border", palette.Border)

	m.viper.SetDefault("explorer.start_dir", defaults.Explorer.StartDir)
	m.viper.SetDefault("explorer.show_hidden", defaults.Explorer.ShowHidden)

	m.viper.SetDefault("editor.mouse", defaults.Editor.Mouse)
	m.viper.SetDefault("editor.watch_file", defaults.Editor.WatchFile)

	m.viper.SetDefault("paths.bitcoin_conf", defaults.Paths.BitcoinConf)
	m.viper.SetDefault("paths.p2pool_conf", defaults.Paths.P2PoolConf)
}
