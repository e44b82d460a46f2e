package model

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/logging"
)

// Explorer is the directory browser used to pick a configuration file.
type Explorer struct {
	fs         port.FileSystem
	showHidden bool

	currentDir string
	files      []entity.DirEntry
	// selected is -1 when nothing is selected.
	selected int
}

// NewExplorer creates an explorer positioned on dir. Call Refresh to list it.
func NewExplorer(fs port.FileSystem, dir string, showHidden bool) *Explorer {
	return &Explorer{
		fs:         fs,
		showHidden: showHidden,
		currentDir: filepath.Clean(dir),
		selected:   0,
	}
}

// Dir returns the directory being listed.
func (e *Explorer) Dir() string {
	return e.currentDir
}

// Files returns the current listing: the parent marker first when the
// directory has a parent, then directories, then files.
func (e *Explorer) Files() []entity.DirEntry {
	return e.files
}

// Selection returns the selected index.
func (e *Explorer) Selection() (int, bool) {
	if e.selected < 0 || e.selected >= len(e.files) {
		return 0, false
	}
	return e.selected, true
}

// SetDir moves to dir and selects the first row. Call Refresh afterwards.
func (e *Explorer) SetDir(dir string) {
	e.currentDir = filepath.Clean(dir)
	e.selected = 0
}

// Refresh rebuilds the listing of the current directory. The selection is
// kept when still valid, clamped to the last row otherwise, and cleared when
// the listing is empty. On a listing error only the parent marker remains.
func (e *Explorer) Refresh(ctx context.Context) error {
	log := logging.FromContext(ctx)

	var files []entity.DirEntry
	if parent := filepath.Dir(e.currentDir); parent != e.currentDir {
		files = append(files, entity.DirEntry{
			Name:     entity.ParentDirName,
			Path:     parent,
			IsDir:    true,
			IsParent: true,
		})
	}

	entries, err := e.fs.ReadDir(ctx, e.currentDir)
	if err == nil {
		files = append(files, sortEntries(e.filterHidden(entries))...)
	}
	e.files = files
	e.clampSelection()

	if err != nil {
		log.Error().Err(err).Str("path", e.currentDir).Msg("failed to list directory")
		return err
	}
	log.Debug().Str("path", e.currentDir).Int("entries", len(files)).Msg("directory listed")
	return nil
}

func (e *Explorer) filterHidden(entries []entity.DirEntry) []entity.DirEntry {
	if e.showHidden {
		return entries
	}
	return slices.DeleteFunc(entries, func(d entity.DirEntry) bool {
		return strings.HasPrefix(d.Name, ".")
	})
}

// sortEntries orders directories before files, each by name (byte order).
func sortEntries(entries []entity.DirEntry) []entity.DirEntry {
	slices.SortStableFunc(entries, func(a, b entity.DirEntry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

func (e *Explorer) clampSelection() {
	switch {
	case len(e.files) == 0:
		e.selected = -1
	case e.selected < 0:
		e.selected = 0
	case e.selected >= len(e.files):
		e.selected = len(e.files) - 1
	}
}

// SelectNext moves the selection down, wrapping to the top.
func (e *Explorer) SelectNext() {
	if len(e.files) == 0 {
		return
	}
	e.selected = (e.selected + 1) % len(e.files)
}

// SelectPrevious moves the selection up, wrapping to the bottom.
func (e *Explorer) SelectPrevious() {
	if len(e.files) == 0 {
		return
	}
	e.selected = (e.selected - 1 + len(e.files)) % len(e.files)
}

// Select selects row i, clamped to the listing.
func (e *Explorer) Select(i int) {
	if len(e.files) == 0 {
		return
	}
	e.selected = max(0, min(i, len(e.files)-1))
}

// SelectPath selects the row whose path is path. It reports whether one was found.
func (e *Explorer) SelectPath(path string) bool {
	path = filepath.Clean(path)
	for i, f := range e.files {
		if !f.IsParent && filepath.Clean(f.Path) == path {
			e.selected = i
			return true
		}
	}
	return false
}

// Activate acts on the selected row. The parent marker and directories are
// entered; a file is returned with ok=true and the explorer stays where it is.
func (e *Explorer) Activate(ctx context.Context) (path string, ok bool, err error) {
	i, selected := e.Selection()
	if !selected {
		return "", false, nil
	}

	entry := e.files[i]
	if !entry.IsDir {
		return entry.Path, true, nil
	}

	e.SetDir(entry.Path)
	return "", false, e.Refresh(ctx)
}
