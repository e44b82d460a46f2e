// Package model contains the bubbletea models of the interactive session.
package model

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/application/usecase"
	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/logging"
)

// notification is the one-line message shown in the footer.
type notification struct {
	text  string
	isErr bool
}

// AppModelConfig holds the dependencies of the session.
type AppModelConfig struct {
	FS              port.FileSystem
	LoadConfigUC    *usecase.LoadConfigUseCase
	SaveConfigUC    *usecase.SaveConfigUseCase
	ResolveStartDir *usecase.ResolveStartDirUseCase
	// Watcher is optional; when set the open file is watched for external changes.
	Watcher port.FileWatcher

	// StartDir overrides the explorer's starting directory for every role.
	StartDir   string
	ShowHidden bool

	// InitialPath opens a file directly in the editor, as InitialRole.
	InitialPath string
	InitialRole entity.DaemonRole
}

// AppModel is the session state machine.
type AppModel struct {
	help  help.Model
	keys  keyMap
	theme *styles.Theme
	ctx   context.Context

	screen       Screen
	returnScreen Screen
	sidebarIndex int
	role         entity.DaemonRole

	editor   *Editor
	explorer *Explorer
	// editBuffer is non-nil only in ScreenEditingValue.
	editBuffer *textinput.Model

	configFilePath string
	notification   notification
	frame          *frame
	running        bool
	watching       bool

	width  int
	height int

	loadConfigUC    *usecase.LoadConfigUseCase
	saveConfigUC    *usecase.SaveConfigUseCase
	resolveStartDir *usecase.ResolveStartDirUseCase
	watcher         port.FileWatcher
	startDir        string
}

// NewAppModel creates the session on the home screen, or directly in the
// editor when cfg.InitialPath is set.
func NewAppModel(ctx context.Context, theme *styles.Theme, cfg AppModelConfig) AppModel {
	m := AppModel{
		help:            styles.NewStyledHelp(theme),
		keys:            defaultKeyMap(),
		theme:           theme,
		ctx:             ctx,
		screen:          ScreenHome,
		returnScreen:    ScreenHome,
		editor:          NewEditor(nil),
		explorer:        NewExplorer(cfg.FS, ".", cfg.ShowHidden),
		frame:           &frame{},
		running:         true,
		width:           80,
		height:          24,
		loadConfigUC:    cfg.LoadConfigUC,
		saveConfigUC:    cfg.SaveConfigUC,
		resolveStartDir: cfg.ResolveStartDir,
		watcher:         cfg.Watcher,
		startDir:        cfg.StartDir,
	}

	if cfg.InitialPath != "" {
		m.role = cfg.InitialRole
		m.screen = ScreenForRole(cfg.InitialRole)
		m.sidebarIndex = int(m.screen)
		m.returnScreen = m.screen
		m.openFile(cfg.InitialPath)
	}
	return m
}

// fileChangedMsg is sent when the open file changes on disk.
type fileChangedMsg struct {
	change port.FileChange
}

// watchStoppedMsg is sent when the watcher can no longer deliver changes.
type watchStoppedMsg struct {
	err error
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	if m.watching {
		return m.waitForChange()
	}
	return nil
}

func (m AppModel) waitForChange() tea.Cmd {
	w := m.watcher
	ctx := m.ctx
	return func() tea.Msg {
		change, err := w.Next(ctx)
		if err != nil {
			return watchStoppedMsg{err: err}
		}
		return fileChangedMsg{change: change}
	}
}

// Screen returns the active screen.
func (m AppModel) Screen() Screen {
	return m.screen
}

// Running reports whether the session is still active.
func (m AppModel) Running() bool {
	return m.running
}

// ConfigFilePath returns the path of the file being edited.
func (m AppModel) ConfigFilePath() string {
	return m.configFilePath
}

// Notification returns the footer message.
func (m AppModel) Notification() string {
	return m.notification.text
}

// Editor returns the section editor.
func (m AppModel) Editor() *Editor {
	return m.editor
}

// Explorer returns the file explorer.
func (m AppModel) Explorer() *Explorer {
	return m.explorer
}

// Rects returns the hit-test regions recorded by the last View.
func (m AppModel) Rects() InteractiveRects {
	return m.frame.rects
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case fileChangedMsg:
		if msg.change.Removed {
			m.notify(fmt.Sprintf("%s was removed or replaced on disk", filepath.Base(msg.change.Path)), true)
		} else {
			m.notify(fmt.Sprintf("%s changed on disk", filepath.Base(msg.change.Path)), true)
		}
		return m, m.waitForChange()

	case watchStoppedMsg:
		if !errors.Is(msg.err, context.Canceled) {
			logging.FromContext(m.ctx).Debug().Err(msg.err).Msg("file watcher stopped")
		}
		m.watching = false
		return m, nil
	}

	// cursor blink and other textinput messages
	if m.screen == ScreenEditingValue && m.editBuffer != nil {
		buf, cmd := m.editBuffer.Update(msg)
		m.editBuffer = &buf
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	// q is text while a value is being typed.
	if m.screen == ScreenEditingValue {
		return m.handleEditingValueKey(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch m.screen {
	case ScreenHome, ScreenBitcoinConfig, ScreenP2PoolConfig:
		return m.handleSidebarKey(msg)
	case ScreenFileExplorer:
		return m.handleExplorerKey(msg)
	case ScreenEditing:
		return m.handleEditingKey(msg)
	}
	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	logging.FromContext(m.ctx).Debug().Str("screen", m.screen.String()).Msg("quitting session")
	m.running = false
	return m, tea.Quit
}

func (m AppModel) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sidebarIndex > 0 {
			m.sidebarIndex--
			m.screen = sidebarScreens[m.sidebarIndex]
		}
	case key.Matches(msg, m.keys.Down):
		if m.sidebarIndex < len(sidebarScreens)-1 {
			m.sidebarIndex++
			m.screen = sidebarScreens[m.sidebarIndex]
		}
	case key.Matches(msg, m.keys.Enter):
		if role, ok := m.screen.Role(); ok {
			m.openExplorer(role)
		}
	}
	return m, nil
}

func (m AppModel) handleExplorerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.explorer.SelectPrevious()
	case key.Matches(msg, m.keys.Down):
		m.explorer.SelectNext()
	case key.Matches(msg, m.keys.Back):
		m.screen = m.returnScreen
	case key.Matches(msg, m.keys.Enter):
		path, isFile, err := m.explorer.Activate(m.ctx)
		if err != nil {
			m.notify(fmt.Sprintf("Cannot list %s: %v", m.explorer.Dir(), err), true)
			return m, nil
		}
		if isFile {
			cmd := m.openFile(path)
			return m, cmd
		}
	}
	return m, nil
}

func (m AppModel) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevSection):
		m.editor.PreviousSection()
	case key.Matches(msg, m.keys.NextSection):
		m.editor.NextSection()
	case key.Matches(msg, m.keys.Up):
		m.editor.PreviousItem()
	case key.Matches(msg, m.keys.Down):
		m.editor.NextItem()
	case key.Matches(msg, m.keys.Toggle):
		m.editor.ToggleEnabled()
	case key.Matches(msg, m.keys.Enter):
		if m.editor.Activate() {
			cmd := m.startValueEdit()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Back):
		m.screen = m.returnScreen
	}
	return m, nil
}

func (m AppModel) handleEditingValueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.editor.CommitEdit(m.editBuffer.Value())
		m.stopValueEdit()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.stopValueEdit()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.editor.CommitEdit(m.editBuffer.Value())
		m.stopValueEdit()
		m.save()
		return m, nil
	}

	buf, cmd := m.editBuffer.Update(msg)
	m.editBuffer = &buf
	return m, cmd
}

func (m *AppModel) startValueEdit() tea.Cmd {
	entry := m.editor.Current()
	if entry == nil {
		return nil
	}

	buf := textinput.New()
	buf.Prompt = "> "
	buf.PromptStyle = m.theme.HelpKey
	buf.TextStyle = m.theme.Normal
	buf.SetValue(entry.Value)
	buf.CursorEnd()
	m.editBuffer = &buf
	m.screen = ScreenEditingValue
	return m.editBuffer.Focus()
}

func (m *AppModel) stopValueEdit() {
	m.editBuffer = nil
	m.screen = ScreenEditing
}

// openExplorer switches to the explorer for role, positioned on the role's
// default directory with the default file selected when it exists.
func (m *AppModel) openExplorer(role entity.DaemonRole) {
	ctx := logging.WithRole(m.ctx, role.String())
	log := logging.FromContext(ctx)

	out, err := m.resolveStartDir.Execute(ctx, usecase.ResolveStartDirInput{
		Role:     role,
		Override: m.startDir,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve explorer directory")
		m.notify(fmt.Sprintf("Cannot open file explorer: %v", err), true)
		return
	}

	m.role = role
	m.returnScreen = m.screen
	m.screen = ScreenFileExplorer
	m.explorer.SetDir(out.Dir)
	if err := m.explorer.Refresh(ctx); err != nil {
		m.notify(fmt.Sprintf("Cannot list %s: %v", out.Dir, err), true)
	}
	if out.Preselect != "" {
		m.explorer.SelectPath(out.Preselect)
	}
	log.Debug().Str("path", out.Dir).Msg("file explorer opened")
}

// openFile parses path with the active role's schema and enters the editor.
// On failure the screen does not change.
func (m *AppModel) openFile(path string) tea.Cmd {
	ctx := logging.WithPath(m.ctx, path)
	log := logging.FromContext(ctx)

	out, err := m.loadConfigUC.Execute(ctx, usecase.LoadConfigInput{Path: path, Role: m.role})
	if err != nil {
		log.Error().Err(err).Msg("failed to open config file")
		m.notify(fmt.Sprintf("Cannot open %s: %v", filepath.Base(path), err), true)
		return nil
	}

	m.editor.Load(out.Sections)
	m.configFilePath = out.Path
	m.screen = ScreenEditing
	if out.Existed {
		m.notify(fmt.Sprintf("Opened %s", out.Path), false)
	} else {
		m.notify(fmt.Sprintf("%s does not exist yet; showing defaults", out.Path), false)
	}

	return m.watch(out.Path)
}

// watch points the watcher at path and starts the wait loop once.
func (m *AppModel) watch(path string) tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if err := m.watcher.Watch(path); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Str("path", path).Msg("cannot watch config file")
		return nil
	}
	if m.watching {
		return nil
	}
	m.watching = true
	return m.waitForChange()
}

// save writes the enabled entries to the open file. The screen never changes.
func (m *AppModel) save() {
	log := logging.FromContext(m.ctx)

	if m.configFilePath == "" {
		m.notify("No file open", true)
		return
	}
	if m.watcher != nil {
		m.watcher.IgnoreNext()
	}

	out, err := m.saveConfigUC.Execute(m.ctx, usecase.SaveConfigInput{
		Path:     m.configFilePath,
		Sections: m.editor.Sections(),
	})
	if err != nil {
		log.Error().Err(err).Str("path", m.configFilePath).Msg("failed to save config file")
		m.notify(fmt.Sprintf("Save failed: %v", err), true)
		return
	}
	m.notify(fmt.Sprintf("Saved %d keys to %s", out.Written, out.Path), false)
}

func (m *AppModel) notify(text string, isErr bool) {
	m.notification = notification{text: text, isErr: isErr}
}

func (m AppModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	rects := m.frame.rects

	switch m.screen {
	case ScreenBitcoinConfig, ScreenP2PoolConfig:
		if r := rects.SelectConfigButton; r != nil && r.Contains(msg.X, msg.Y) {
			role, _ := m.screen.Role()
			m.openExplorer(role)
		}

	case ScreenFileExplorer:
		if r := rects.FileList; r != nil && r.Contains(msg.X, msg.Y) {
			if row := listRow(r, msg.Y, m.frame.fileOffset, len(m.explorer.Files())); row >= 0 {
				m.explorer.Select(row)
			}
		}

	case ScreenEditing:
		if r := rects.Tabs; r != nil && r.Contains(msg.X, msg.Y) {
			if i, ok := m.sectionTabs(r.Width - 2).HitTest(msg.X - r.X - 1); ok {
				m.editor.SelectSection(i)
			}
			return m, nil
		}
		if r := rects.ConfigList; r != nil && r.Contains(msg.X, msg.Y) {
			sec := m.editor.CurrentSection()
			if sec == nil {
				return m, nil
			}
			if row := listRow(r, msg.Y, m.frame.itemOffset, len(sec.Items)); row >= 0 {
				m.editor.SelectItem(row)
			}
		}
	}
	return m, nil
}

// sectionTabs builds the tab strip for an inner width of width cells.
func (m AppModel) sectionTabs(width int) styles.TabsModel {
	sections := m.editor.Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	tabs := styles.NewTabs(m.theme, names...)
	tabs.SetActive(m.editor.SectionIndex())
	tabs.Width = width
	return tabs
}
