// Package daemonpath resolves where daemons conventionally keep their configuration files.
package daemonpath

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
)

// Env is the slice of the environment the resolver depends on.
type Env struct {
	GOOS    string
	Home    string
	AppData string
}

// Resolver implements port.DefaultPathResolver.
type Resolver struct {
	env       Env
	overrides map[entity.DaemonRole]string
}

// New creates a resolver for the running platform. Non-empty overrides
// replace the platform default of their role.
func New(overrides map[entity.DaemonRole]string) *Resolver {
	home, _ := os.UserHomeDir()
	return NewWithEnv(Env{
		GOOS:    runtime.GOOS,
		Home:    home,
		AppData: os.Getenv("APPDATA"),
	}, overrides)
}

// NewWithEnv creates a resolver for an explicit environment.
func NewWithEnv(env Env, overrides map[entity.DaemonRole]string) *Resolver {
	clean := make(map[entity.DaemonRole]string, len(overrides))
	for role, path := range overrides {
		if path != "" {
			clean[role] = expandHome(path, env.Home)
		}
	}
	return &Resolver{env: env, overrides: clean}
}

// DefaultConfigPath returns the configured or platform default path for role.
func (r *Resolver) DefaultConfigPath(role entity.DaemonRole) (string, bool) {
	if path, ok := r.overrides[role]; ok {
		return path, true
	}

	switch role {
	case entity.DaemonRoleBitcoin:
		return r.bitcoinPath()
	case entity.DaemonRoleP2Pool:
		return r.p2poolPath()
	default:
		return "", false
	}
}

func (r *Resolver) bitcoinPath() (string, bool) {
	switch r.env.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		if r.env.Home == "" {
			return "", false
		}
		return filepath.Join(r.env.Home, ".bitcoin", "bitcoin.conf"), true
	case "darwin":
		if r.env.Home == "" {
			return "", false
		}
		return filepath.Join(r.env.Home, "Library", "Application Support", "Bitcoin", "bitcoin.conf"), true
	case "windows":
		if r.env.AppData == "" {
			return "", false
		}
		return filepath.Join(r.env.AppData, "Bitcoin", "bitcoin.conf"), true
	default:
		return "", false
	}
}

func (r *Resolver) p2poolPath() (string, bool) {
	if r.env.GOOS == "windows" || r.env.Home == "" {
		return "", false
	}
	return filepath.Join(r.env.Home, ".p2pool", "p2pool.conf"), true
}

// ExpandHome replaces a leading "~" or "~/" in path with the home directory.
func (r *Resolver) ExpandHome(path string) string {
	return expandHome(path, r.env.Home)
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(home, path[2:])
	}
	return path
}

var _ port.DefaultPathResolver = (*Resolver)(nil)
