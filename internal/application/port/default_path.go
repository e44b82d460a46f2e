package port

import "github.com/bnema/pdm/internal/domain/entity"

// DefaultPathResolver suggests where a daemon usually keeps its configuration file.
// The result is only a starting point for the explorer; it is never validated.
type DefaultPathResolver interface {
	// DefaultConfigPath returns the platform default path and false when none is known.
	DefaultConfigPath(role entity.DaemonRole) (string, bool)
	// ExpandHome replaces a leading "~" with the user's home directory.
	ExpandHome(path string) string
}
