package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTheme_FrameColor(t *testing.T) {
	theme := NewTheme(nil)

	assert.Equal(t, theme.Border, theme.frameColor(false))
	assert.Equal(t, theme.Accent, theme.frameColor(true))

	theme.BoxFocused = theme.BoxFocused.BorderForeground(lipgloss.Color("#ff00ff"))
	assert.Equal(t, lipgloss.Color("#ff00ff"), theme.frameColor(true))
}
