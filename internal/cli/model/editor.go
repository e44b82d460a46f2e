package model

import "github.com/bnema/pdm/internal/domain/entity"

// Editor holds the loaded sections and the section/item cursors.
// Every operation on an empty or out-of-range state is a no-op.
type Editor struct {
	sections []entity.ConfigSection
	section  int
	item     int
}

// NewEditor creates an editor over sections with both cursors at zero.
func NewEditor(sections []entity.ConfigSection) *Editor {
	return &Editor{sections: sections}
}

// Load replaces the sections and resets both cursors.
func (e *Editor) Load(sections []entity.ConfigSection) {
	e.sections = sections
	e.section = 0
	e.item = 0
}

// Sections returns the sections being edited.
func (e *Editor) Sections() []entity.ConfigSection {
	return e.sections
}

// SectionIndex returns the selected section index.
func (e *Editor) SectionIndex() int {
	return e.section
}

// ItemIndex returns the selected item index within the selected section.
func (e *Editor) ItemIndex() int {
	return e.item
}

// CurrentSection returns the selected section, or nil when there is none.
func (e *Editor) CurrentSection() *entity.ConfigSection {
	if e.section < 0 || e.section >= len(e.sections) {
		return nil
	}
	return &e.sections[e.section]
}

// Current returns the selected entry, or nil when there is none.
func (e *Editor) Current() *entity.ConfigEntry {
	sec := e.CurrentSection()
	if sec == nil || e.item < 0 || e.item >= len(sec.Items) {
		return nil
	}
	return sec.Items[e.item]
}

func (e *Editor) NextSection() {
	if len(e.sections) == 0 {
		return
	}
	e.section = (e.section + 1) % len(e.sections)
	e.item = 0
}

func (e *Editor) PreviousSection() {
	if len(e.sections) == 0 {
		return
	}
	e.section = (e.section - 1 + len(e.sections)) % len(e.sections)
	e.item = 0
}

// SelectSection jumps to section i and resets the item cursor.
func (e *Editor) SelectSection(i int) {
	if i < 0 || i >= len(e.sections) {
		return
	}
	e.section = i
	e.item = 0
}

func (e *Editor) NextItem() {
	sec := e.CurrentSection()
	if sec == nil || len(sec.Items) == 0 {
		return
	}
	e.item = (e.item + 1) % len(sec.Items)
}

func (e *Editor) PreviousItem() {
	sec := e.CurrentSection()
	if sec == nil || len(sec.Items) == 0 {
		return
	}
	e.item = (e.item - 1 + len(sec.Items)) % len(sec.Items)
}

// SelectItem selects item i of the current section, clamped to its length.
func (e *Editor) SelectItem(i int) {
	sec := e.CurrentSection()
	if sec == nil || len(sec.Items) == 0 {
		return
	}
	e.item = max(0, min(i, len(sec.Items)-1))
}

// ToggleEnabled flips whether the selected entry is written on save.
// Custom keys have no default to fall back to and stay enabled.
func (e *Editor) ToggleEnabled() {
	entry := e.Current()
	if entry == nil || !entry.IsKnown() {
		return
	}
	entry.Enabled = !entry.Enabled
}

// Activate flips a boolean entry between "1" and "0" and enables it, returning
// false. For any other entry it returns true: the caller should start value editing.
func (e *Editor) Activate() bool {
	entry := e.Current()
	if entry == nil {
		return false
	}
	if !entry.IsBoolean() {
		return true
	}
	if entry.Value == "1" {
		entry.Value = "0"
	} else {
		entry.Value = "1"
	}
	entry.Enabled = true
	return false
}

// CommitEdit stores buffer as the selected entry's value and enables it.
func (e *Editor) CommitEdit(buffer string) {
	entry := e.Current()
	if entry == nil {
		return
	}
	entry.Value = buffer
	entry.Enabled = true
}
