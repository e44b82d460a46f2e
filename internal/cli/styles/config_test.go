package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/infrastructure/config"
)

func TestConfigRenderer(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderConfigInfo("/tmp/pdm/config.toml", false)
	require.Contains(t, out, "/tmp/pdm/config.toml")
	require.Contains(t, out, "defaults apply")

	out = r.RenderCreated("/tmp/pdm/config.toml")
	require.Contains(t, out, "config.toml")

	errOut := r.RenderError(errors.New("boom"))
	require.Contains(t, errOut, "boom")
}

func TestConfigSchemaRenderer(t *testing.T) {
	theme := styles.NewTheme(nil)
	r := styles.NewConfigSchemaRenderer(theme)
	keys := []entity.ConfigSchema{
		{Key: "rpcport", ValueType: entity.ConfigTypeInteger, Section: "RPC", Description: "RPC port", Default: "8332"},
		{Key: "server", ValueType: entity.ConfigTypeBoolean, Section: "RPC", Description: "Accept RPC", Default: "0"},
	}

	t.Run("text", func(t *testing.T) {
		out := r.Render(entity.DaemonRoleBitcoin, keys, []string{"RPC"})
		assert.Contains(t, out, "bitcoin.conf")
		assert.Contains(t, out, "rpcport")
		assert.Contains(t, out, "8332")
	})

	t.Run("empty", func(t *testing.T) {
		out := r.Render(entity.DaemonRoleP2Pool, nil, nil)
		assert.Contains(t, out, "No known keys for p2pool.conf")
	})

	t.Run("json uses type names", func(t *testing.T) {
		out, err := r.RenderJSON(keys)
		require.NoError(t, err)
		assert.Contains(t, out, `"type": "Integer"`)
	})

	t.Run("yaml uses type names", func(t *testing.T) {
		out, err := r.RenderYAML(keys)
		require.NoError(t, err)
		assert.Contains(t, out, "type: Boolean")
		assert.Contains(t, out, "key: server")
	})
}

func TestSchemaTable(t *testing.T) {
	theme := styles.NewTheme(nil)
	out := styles.SchemaTable(theme, []entity.ConfigSchema{
		{Key: "datadir", ValueType: entity.ConfigTypeString, Section: "Core", Description: "Data directory"},
	})

	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "datadir")
	assert.Contains(t, out, "-")
}
