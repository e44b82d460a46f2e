package config

// Config represents pdm's own settings. It never describes a daemon file.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// Explorer controls where and how the file explorer lists files.
	Explorer ExplorerConfig `mapstructure:"explorer" yaml:"explorer" toml:"explorer" json:"explorer"`
	// Editor controls interactive session behavior.
	Editor EditorConfig `mapstructure:"editor" yaml:"editor" toml:"editor" json:"editor"`
	// Paths override the platform default location of each daemon's config file.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths" toml:"paths" json:"paths"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration. The interactive session only logs to a file.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// AppearanceConfig holds terminal UI colors.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette holds the theme colors as #RRGGBB strings.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// ExplorerConfig holds file explorer preferences.
type ExplorerConfig struct {
	// StartDir is used instead of the daemon's default directory when set.
	StartDir string `mapstructure:"start_dir" yaml:"start_dir" toml:"start_dir" json:"start_dir"`
	// ShowHidden lists dot files and dot directories.
	ShowHidden bool `mapstructure:"show_hidden" yaml:"show_hidden" toml:"show_hidden" json:"show_hidden"`
}

// EditorConfig holds editing session preferences.
type EditorConfig struct {
	// Mouse enables pointer input.
	Mouse bool `mapstructure:"mouse" yaml:"mouse" toml:"mouse" json:"mouse"`
	// WatchFile notifies when the open file changes on disk.
	WatchFile bool `mapstructure:"watch_file" yaml:"watch_file" toml:"watch_file" json:"watch_file"`
}

// PathsConfig overrides default daemon config locations. "~/" is expanded.
type PathsConfig struct {
	BitcoinConf string `mapstructure:"bitcoin_conf" yaml:"bitcoin_conf" toml:"bitcoin_conf" json:"bitcoin_conf"`
	P2PoolConf  string `mapstructure:"p2pool_conf" yaml:"p2pool_conf" toml:"p2pool_conf" json:"p2pool_conf"`
}
