package port

import "context"

// FileChange describes an external modification of a watched file.
type FileChange struct {
	Path    string
	Removed bool
}

// FileWatcher reports changes to a single file at a time.
type FileWatcher interface {
	// Watch replaces the watched file with path.
	Watch(path string) error
	// Next blocks until the watched file changes or ctx is done.
	Next(ctx context.Context) (FileChange, error)
	// IgnoreNext suppresses the next change notification (used around our own writes).
	IgnoreNext()
	Close() error
}
