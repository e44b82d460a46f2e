package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigDir = "/home/u/.config/pdm"

func newTestManager(t *testing.T, content string) *Manager {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testConfigDir, 0o755))
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, testConfigDir+"/config.toml", []byte(content), 0o644))
	}
	mgr, err := NewManagerWithFs(fs, testConfigDir)
	require.NoError(t, err)
	return mgr
}

func TestManager_Load_MissingFileUsesDefaults(t *testing.T) {
	mgr := newTestManager(t, "")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Logging.Level, cfg.Logging.Level)
	assert.Equal(t, defaults.Appearance.DarkPalette, cfg.Appearance.DarkPalette)
	assert.True(t, cfg.Editor.Mouse)
	assert.Equal(t, testConfigDir+"/config.toml", mgr.GetConfigFile())
}

func TestManager_Load_ReadsFile(t *testing.T) {
	mgr := newTestManager(t, `
[logging]
level = "DEBUG"
format = "text"

[explorer]
show_hidden = false
start_dir = " /srv/nodes "

[paths]
bitcoin_conf = "~/nodes/bitcoin.conf"

[appearance.dark_palette]
accent = "#ff0000"
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Explorer.ShowHidden)
	assert.Equal(t, "/srv/nodes", cfg.Explorer.StartDir)
	assert.Equal(t, "~/nodes/bitcoin.conf", cfg.Paths.BitcoinConf)
	assert.Equal(t, "#ff0000", cfg.Appearance.DarkPalette.Accent)
	assert.Equal(t, DefaultConfig().Appearance.DarkPalette.Background, cfg.Appearance.DarkPalette.Background)
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	t.Setenv("PDM_LOG_LEVEL", "warn")
	t.Setenv("PDM_EDITOR_MOUSE", "false")
	mgr := newTestManager(t, "")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Editor.Mouse)
}

func TestManager_Load_InvalidValues(t *testing.T) {
	mgr := newTestManager(t, `
[logging]
level = "loud"

[appearance.dark_palette]
text = "white"
`)

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "appearance.dark_palette.text")
}

func TestManager_Load_MalformedTOML(t *testing.T) {
	mgr := newTestManager(t, "[logging\nlevel=")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_Get_BeforeLoad(t *testing.T) {
	mgr := newTestManager(t, "")

	assert.Equal(t, DefaultConfig().Editor, mgr.Get().Editor)
}
