package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// TabSeparator sits between two rendered tabs.
const TabSeparator = "│"

// TabsModel represents a horizontal tab bar.
type TabsModel struct {
	Tabs   []string
	Active int
	// Width is the number of cells available; zero means unlimited.
	// When the tabs do not fit, the strip scrolls to keep Active visible.
	Width int
	theme *Theme
}

// NewTabs creates a new tab bar with the given labels.
func NewTabs(theme *Theme, tabs ...string) TabsModel {
	return TabsModel{
		Tabs:   tabs,
		Active: 0,
		theme:  theme,
	}
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

func (m TabsModel) render(i int) string {
	style := m.theme.InactiveTab
	if i == m.Active {
		style = m.theme.ActiveTab
	}
	return style.Render(m.Tabs[i])
}

func (m TabsModel) separator() string {
	return lipgloss.NewStyle().Foreground(m.theme.Border).Render(TabSeparator)
}

// offset returns the first visible tab: the smallest index from which the
// strip still reaches the active tab within Width.
func (m TabsModel) offset() int {
	if m.Width <= 0 || m.Active <= 0 {
		return 0
	}
	limit := m.Width
	if m.Active < len(m.Tabs)-1 {
		// room for the ellipsis View appends when later tabs are cut
		limit--
	}
	sepW := lipgloss.Width(m.separator())
	span := lipgloss.Width(m.render(m.Active))
	first := m.Active
	for first > 0 {
		next := span + sepW + lipgloss.Width(m.render(first-1))
		if next > limit {
			break
		}
		span = next
		first--
	}
	return first
}

// View renders the visible tabs on a single line, cut to Width.
func (m TabsModel) View() string {
	var b strings.Builder
	sep := m.separator()
	first := m.offset()
	for i := first; i < len(m.Tabs); i++ {
		if i > first {
			b.WriteString(sep)
		}
		b.WriteString(m.render(i))
	}
	if m.Width > 0 {
		return xansi.Truncate(b.String(), m.Width, "…")
	}
	return b.String()
}

// HitTest returns the tab under column x, measured from the first cell of View.
// Separators, the space after the last tab and columns past Width hit nothing.
func (m TabsModel) HitTest(x int) (int, bool) {
	if x < 0 || (m.Width > 0 && x >= m.Width) {
		return 0, false
	}
	sepW := lipgloss.Width(m.separator())
	cursor := 0
	for i := m.offset(); i < len(m.Tabs); i++ {
		w := lipgloss.Width(m.render(i))
		if x >= cursor && x < cursor+w {
			return i, true
		}
		cursor += w + sepW
	}
	return 0, false
}
