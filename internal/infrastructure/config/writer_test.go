package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var headers []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			headers = append(headers, trimmed)
		}
	}
	return headers
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pdm", "config.toml")

	err := WriteConfigOrdered(DefaultConfig(), configPath)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	headers := sectionHeaders(string(content))
	require.NotEmpty(t, headers)
	assert.True(t, slicesSorted(headers), "sections not sorted: %v", headers)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Appearance.DarkPalette, decoded.Appearance.DarkPalette)
	assert.Equal(t, DefaultConfig().Editor, decoded.Editor)
}

func slicesSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[paths]
bitcoin_conf = ''

[appearance]

[editor]
mouse = true

[appearance.dark_palette]
background = '#000000'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.dark_palette]",
		"[editor]",
		"[paths]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[appearance]"))
	assert.True(t, strings.HasSuffix(result, "bitcoin_conf = ''\n"))
}

func TestEncodeConfigOrdered_Nil(t *testing.T) {
	_, err := EncodeConfigOrdered(nil)
	assert.Error(t, err)
}
