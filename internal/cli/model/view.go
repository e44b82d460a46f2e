package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/domain/entity"
)

const (
	sidebarWidth = 25
	footerHeight = 3
)

// View implements tea.Model. It also records this frame's hit-test regions.
func (m AppModel) View() string {
	m.frame.rects.Clear()
	if !m.running {
		return ""
	}

	width := max(m.width, sidebarWidth+10)
	height := max(m.height, footerHeight+5)
	mainW := width - sidebarWidth
	contentH := height - footerHeight

	var content string
	switch m.screen {
	case ScreenHome:
		content = m.viewHome(mainW, contentH)
	case ScreenBitcoinConfig, ScreenP2PoolConfig:
		content = m.viewRole(sidebarWidth, 0, mainW, contentH)
	case ScreenFileExplorer:
		content = m.viewExplorer(sidebarWidth, 0, mainW, contentH)
	case ScreenEditing, ScreenEditingValue:
		content = m.viewEditing(sidebarWidth, 0, mainW, contentH)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, content, m.viewFooter(mainW))
	out := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(height), main)

	if m.screen == ScreenEditingValue {
		out = m.overlayValueEditor(out, width, height)
	}
	return out
}

func (m AppModel) viewSidebar(height int) string {
	t := m.theme
	lines := make([]string, 0, len(sidebarScreens))
	for i, s := range sidebarScreens {
		if i == m.sidebarIndex {
			lines = append(lines, t.ListItemSelected.Render(">> "+s.Title()))
			continue
		}
		lines = append(lines, t.ListItem.Render("   "+s.Title()))
	}
	focused := m.screen == ScreenHome || m.screen == ScreenBitcoinConfig || m.screen == ScreenP2PoolConfig
	return t.TitledBox(" PDM ", strings.Join(lines, "\n"), sidebarWidth, height, focused)
}

func (m AppModel) viewHome(w, h int) string {
	t := m.theme
	body := []string{
		"",
		t.Highlight.Render("  Welcome to pdm"),
		"",
		t.Normal.Render("  Browse, inspect and edit daemon configuration files."),
		"",
		t.Subtle.Render("  Pick Bitcoin Config or P2Pool Config in the sidebar,"),
		t.Subtle.Render("  then press enter to choose a file."),
	}
	return t.TitledBox(" Home ", strings.Join(body, "\n"), w, h, false)
}

// viewRole draws the role screen with the load button centered in the
// inner area: 40% above, 3 rows of button, rest below; 30/40/30 across.
func (m AppModel) viewRole(x, y, w, h int) string {
	t := m.theme
	role, _ := m.screen.Role()
	innerW, innerH := w-2, h-2

	top := innerH * 40 / 100
	bx := innerW * 30 / 100
	bw := max(innerW*40/100, 3)

	label := t.Button.Render(fmt.Sprintf("Load %s Config", role.Title()))
	button := strings.Split(t.TitledBox("", lipgloss.PlaceHorizontal(bw-2, lipgloss.Center, label), bw, 3, true), "\n")

	lines := make([]string, innerH)
	pad := strings.Repeat(" ", bx)
	for i, line := range button {
		if top+i < innerH {
			lines[top+i] = pad + line
		}
	}
	if hint := top + len(button) + 1; hint < innerH {
		lines[hint] = lipgloss.PlaceHorizontal(innerW, lipgloss.Center,
			t.Subtle.Render("enter or click to browse for "+role.FileName()))
	}

	m.frame.rects.SelectConfigButton = &Rect{X: x + 1 + bx, Y: y + 1 + top, Width: bw, Height: len(button)}
	return t.TitledBox(" "+m.screen.Title()+" ", strings.Join(lines, "\n"), w, h, true)
}

func (m AppModel) viewExplorer(x, y, w, h int) string {
	t := m.theme
	files := m.explorer.Files()
	selected, hasSelection := m.explorer.Selection()
	if !hasSelection {
		selected = -1
	}

	rows := h - 2
	m.frame.fileOffset = scrollOffset(m.frame.fileOffset, selected, rows, len(files))
	end := min(len(files), m.frame.fileOffset+rows)

	lines := make([]string, 0, rows)
	for i := m.frame.fileOffset; i < end; i++ {
		f := files[i]
		name := f.Name
		if f.IsDir && !f.IsParent {
			name += "/"
		}
		switch {
		case i == selected:
			lines = append(lines, t.ListItemSelected.Render(">> "+name))
		case f.IsDir:
			lines = append(lines, t.Directory.Render("   "+name))
		default:
			lines = append(lines, t.ListItem.Render("   "+name))
		}
	}
	if len(files) == 0 {
		lines = append(lines, t.Subtle.Render("   (empty)"))
	}

	m.frame.rects.FileList = &Rect{X: x, Y: y, Width: w, Height: h}
	return t.TitledBox(" File Explorer: "+m.explorer.Dir()+" ", strings.Join(lines, "\n"), w, h, true)
}

func (m AppModel) viewEditing(x, y, w, h int) string {
	t := m.theme

	tabs := t.TitledBox(" Sections ", m.sectionTabs(w-2).View(), w, 3, false)
	m.frame.rects.Tabs = &Rect{X: x, Y: y, Width: w, Height: 3}

	bodyH := h - 3
	leftW := w / 2
	rightW := w - leftW

	list := m.viewOptions(x, y+3, leftW, bodyH)
	details := t.TitledBox(" Details ", m.detailsText(rightW-2), rightW, bodyH, false)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, lipgloss.JoinHorizontal(lipgloss.Top, list, details))
}

func (m AppModel) viewOptions(x, y, w, h int) string {
	t := m.theme
	var items []*entity.ConfigEntry
	if sec := m.editor.CurrentSection(); sec != nil {
		items = sec.Items
	}
	selected := m.editor.ItemIndex()

	rows := h - 2
	m.frame.itemOffset = scrollOffset(m.frame.itemOffset, selected, rows, len(items))
	end := min(len(items), m.frame.itemOffset+rows)

	lines := make([]string, 0, rows)
	for i := m.frame.itemOffset; i < end; i++ {
		item := items[i]
		box := t.Unchecked.Render("[ ]")
		if item.Enabled {
			box = t.Checked.Render("[x]")
		}
		text := fmt.Sprintf("%s = %s", item.Key, item.Value)
		if i == selected {
			lines = append(lines, "> "+box+" "+t.ListItemSelected.Render(text))
			continue
		}
		lines = append(lines, "  "+box+" "+t.ListItem.Render(text))
	}
	if len(items) == 0 {
		lines = append(lines, t.Subtle.Render("  no options"))
	}

	m.frame.rects.ConfigList = &Rect{X: x, Y: y, Width: w, Height: h}
	return t.TitledBox(" Options ", strings.Join(lines, "\n"), w, h, true)
}

func (m AppModel) detailsText(width int) string {
	t := m.theme
	entry := m.editor.Current()
	if entry == nil {
		return t.Subtle.Render("Nothing selected")
	}

	state := t.Unchecked.Render("disabled (not written)")
	if entry.Enabled {
		state = t.Checked.Render("enabled")
	}

	lines := []string{
		t.Subtle.Render("Key: ") + t.Title.Render(entry.Key),
		t.Subtle.Render("Value: ") + t.Normal.Render(entry.Value),
		t.Subtle.Render("Type: ") + t.Normal.Render(entry.TypeName()),
		t.Subtle.Render("State: ") + state,
	}
	if entry.IsKnown() && entry.Schema.Default != "" {
		lines = append(lines, t.Subtle.Render("Default: ")+t.Normal.Render(entry.Schema.Default))
	}
	lines = append(lines, "", t.Subtle.Render("Description:"))
	lines = append(lines, lipgloss.NewStyle().Width(max(width, 1)).Render(entry.Description()))
	return strings.Join(lines, "\n")
}

func (m AppModel) overlayValueEditor(bg string, width, height int) string {
	t := m.theme
	pw := max(width*60/100, 20)
	ph := max(height*20/100, 5)

	var title string
	if entry := m.editor.Current(); entry != nil {
		title = " Edit Value: " + entry.Key + " "
	}
	body := []string{m.editBuffer.View(), "", t.Subtle.Render("enter commit • esc cancel • ctrl+s save")}
	popup := t.TitledBox(title, strings.Join(body, "\n"), pw, ph, true)

	return styles.Overlay(bg, popup, width, (width-pw)/2, (height-ph)/2)
}

func (m AppModel) viewFooter(w int) string {
	t := m.theme
	hints := m.help.ShortHelpView(m.keys.forScreen(m.screen).ShortHelp())

	line := hints
	if n := m.notification; n.text != "" {
		style := t.SuccessStyle
		if n.isErr {
			style = t.ErrorStyle
		}
		line = style.Render(n.text) + "  " + hints
	}
	return t.TitledBox(" Keys ", line, w, footerHeight, false)
}
