// Package filesystem implements port.FileSystem on top of afero so the same
// code runs against the OS or an in-memory tree.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
)

const newFileMode os.FileMode = 0o644

// Adapter implements port.FileSystem using an afero filesystem.
type Adapter struct {
	fs    afero.Fs
	getwd func() (string, error)
}

// New creates a new filesystem adapter over the OS filesystem.
func New() *Adapter {
	return &Adapter{
		fs:    afero.NewOsFs(),
		getwd: os.Getwd,
	}
}

// NewWithFs creates an adapter over fs with a fixed working directory.
func NewWithFs(fs afero.Fs, workingDir string) *Adapter {
	return &Adapter{
		fs: fs,
		getwd: func() (string, error) {
			return workingDir, nil
		},
	}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := a.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (a *Adapter) ReadDir(_ context.Context, path string) ([]entity.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}

	entries := make([]entity.DirEntry, 0, len(infos))
	for _, info := range infos {
		full := filepath.Join(path, info.Name())
		isDir := info.IsDir()
		// Follow symlinks so linked directories can be entered.
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := a.fs.Stat(full); err == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, entity.DirEntry{
			Name:  info.Name(),
			Path:  full,
			IsDir: isDir,
		})
	}
	return entries, nil
}

func (a *Adapter) ReadFile(_ context.Context, path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it over path. The existing file mode is kept.
func (a *Adapter) WriteFileAtomic(_ context.Context, path string, data []byte) (err error) {
	mode := newFileMode
	if info, statErr := a.fs.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("write %s: is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(a.fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = a.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = a.fs.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = a.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (a *Adapter) WorkingDir() (string, error) {
	return a.getwd()
}

var _ port.FileSystem = (*Adapter)(nil)
