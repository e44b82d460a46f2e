package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJSONSchema(t *testing.T) {
	data, err := GenerateJSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "pdm Configuration", doc["title"])
	assert.Contains(t, string(data), `"dark_palette"`)
	assert.Contains(t, string(data), `"bitcoin_conf"`)
	assert.Contains(t, string(data), `"show_hidden"`)
}
