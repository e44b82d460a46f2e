package styles_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/cli/styles"
)

func TestTitledBox_ExactSize(t *testing.T) {
	theme := styles.NewTheme(nil)

	out := theme.TitledBox(" Files ", "one\ntwo\na line much longer than the box", 12, 5, false)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	for i, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[0], "Files")
	assert.Contains(t, lines[1], "one")
	assert.Contains(t, lines[2], "two")
}

func TestTitledBox_TooSmall(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Empty(t, theme.TitledBox("x", "", 1, 5, false))
}

func TestOverlay(t *testing.T) {
	bg := strings.Join([]string{"aaaaaa", "aaaaaa", "aaaaaa"}, "\n")

	out := styles.Overlay(bg, "XX\nYY", 6, 2, 1)

	assert.Equal(t, "aaaaaa\naaXXaa\naaYYaa", out)
}

func TestTabsHitTest(t *testing.T) {
	theme := styles.NewTheme(nil)
	tabs := styles.NewTabs(theme, "Core", "RPC", "Wallet")
	tabs.SetActive(1)

	// tabs have one cell of padding on each side
	coreW := lipgloss.Width(theme.InactiveTab.Render("Core"))
	rpcW := lipgloss.Width(theme.ActiveTab.Render("RPC"))
	sepW := lipgloss.Width(styles.TabSeparator)

	tests := []struct {
		name   string
		x      int
		want   int
		wantOK bool
	}{
		{"first cell", 0, 0, true},
		{"last cell of first tab", coreW - 1, 0, true},
		{"separator", coreW, 0, false},
		{"second tab", coreW + sepW, 1, true},
		{"third tab", coreW + sepW + rpcW + sepW, 2, true},
		{"past the end", 200, 0, false},
		{"negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tabs.HitTest(tt.x)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTabsScrollToActive(t *testing.T) {
	theme := styles.NewTheme(nil)
	names := []string{"Core", "Network", "RPC", "Wallet", "ZMQ", "Debug"}
	sepW := lipgloss.Width(styles.TabSeparator)
	walletW := lipgloss.Width(theme.InactiveTab.Render("Wallet"))
	zmqW := lipgloss.Width(theme.ActiveTab.Render("ZMQ"))
	width := walletW + sepW + zmqW + 1

	t.Run("active tab past the edge scrolls into view", func(t *testing.T) {
		tabs := styles.NewTabs(theme, names...)
		tabs.Width = width
		tabs.SetActive(4)

		view := tabs.View()
		assert.NotContains(t, view, "Core")
		assert.Contains(t, view, "Wallet")
		assert.Contains(t, view, "ZMQ")
		assert.LessOrEqual(t, lipgloss.Width(view), width)

		got, ok := tabs.HitTest(0)
		require.True(t, ok)
		assert.Equal(t, 3, got)

		got, ok = tabs.HitTest(walletW + sepW)
		require.True(t, ok)
		assert.Equal(t, 4, got)

		_, ok = tabs.HitTest(width)
		assert.False(t, ok)
	})

	t.Run("leading active tab does not scroll", func(t *testing.T) {
		tabs := styles.NewTabs(theme, names...)
		tabs.Width = width

		view := tabs.View()
		assert.True(t, strings.HasPrefix(view, theme.ActiveTab.Render("Core")))
		assert.LessOrEqual(t, lipgloss.Width(view), width)

		got, ok := tabs.HitTest(0)
		require.True(t, ok)
		assert.Equal(t, 0, got)
	})

	t.Run("zero width never scrolls", func(t *testing.T) {
		tabs := styles.NewTabs(theme, names...)
		tabs.SetActive(5)

		assert.Contains(t, tabs.View(), "Core")
		got, ok := tabs.HitTest(0)
		require.True(t, ok)
		assert.Equal(t, 0, got)
	})
}

func TestConfirmModel(t *testing.T) {
	theme := styles.NewTheme(nil)

	t.Run("y answers yes and quits", func(t *testing.T) {
		m := styles.NewConfirm(theme, "Overwrite?")
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

		confirm := next.(styles.ConfirmModel)
		assert.True(t, confirm.Result())
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("enter keeps the default no", func(t *testing.T) {
		m := styles.NewConfirm(theme, "Overwrite?")
		assert.Contains(t, m.View(), "Overwrite?")

		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		confirm := next.(styles.ConfirmModel)
		assert.True(t, confirm.Done())
		assert.False(t, confirm.Result())
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := styles.NewConfirm(theme, "Overwrite?")
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		confirm := next.(styles.ConfirmModel)
		assert.True(t, confirm.Canceled)
		assert.False(t, confirm.Result())
	})
}
