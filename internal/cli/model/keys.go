package model

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/pdm/internal/cli/styles"
)

// keyMap defines every binding of the session.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevSection key.Binding
	NextSection key.Binding
	Enter       key.Binding
	Back        key.Binding
	Toggle      key.Binding
	Save        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/S-tab", "prev section"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next section"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindings is a fixed list of bindings rendered as help.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// forScreen returns the hints shown in the footer for s.
func (k keyMap) forScreen(s Screen) styles.KeyMap {
	switch s {
	case ScreenBitcoinConfig, ScreenP2PoolConfig:
		enter := k.Enter
		enter.SetHelp("enter", "browse")
		return bindings{k.Up, k.Down, enter, k.Quit}
	case ScreenFileExplorer:
		enter := k.Enter
		enter.SetHelp("enter", "open")
		return bindings{k.Up, k.Down, enter, k.Back, k.Quit}
	case ScreenEditing:
		enter := k.Enter
		enter.SetHelp("enter", "edit")
		return bindings{k.Up, k.Down, k.NextSection, k.Toggle, enter, k.Save, k.Back, k.Quit}
	case ScreenEditingValue:
		commit := k.Enter
		commit.SetHelp("enter", "commit")
		cancel := k.Back
		cancel.SetHelp("esc", "cancel")
		return bindings{commit, cancel, k.Save, k.ForceQuit}
	default:
		return bindings{k.Up, k.Down, k.Quit}
	}
}
