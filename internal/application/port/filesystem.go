package port

import (
	"context"

	"github.com/bnema/pdm/internal/domain/entity"
)

// FileSystem provides file system operations for the application layer.
// Implementations must be safe to swap for an in-memory tree in tests.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// ReadDir lists the direct children of path in no particular order.
	ReadDir(ctx context.Context, path string) ([]entity.DirEntry, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFileAtomic replaces path with data or leaves it untouched on failure.
	WriteFileAtomic(ctx context.Context, path string, data []byte) error
	// WorkingDir returns the directory relative paths are resolved against.
	WorkingDir() (string, error)
}
