package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
		},
		Appearance: AppearanceConfig{
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#f7931a",
				Border:         "#3f3f46",
			},
		},
		Explorer: ExplorerConfig{
			StartDir:   "",
			ShowHidden: true,
		},
		Editor: EditorConfig{
			Mouse:     true,
			WatchFile: true,
		},
	}
}

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}
