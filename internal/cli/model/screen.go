package model

import "github.com/bnema/pdm/internal/domain/entity"

// Screen is the active mode of the session. Exactly one is active at a time.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenBitcoinConfig
	ScreenP2PoolConfig
	ScreenFileExplorer
	ScreenEditing
	ScreenEditingValue
)

// sidebarScreens are the screens reachable from the sidebar, in display order.
var sidebarScreens = []Screen{ScreenHome, ScreenBitcoinConfig, ScreenP2PoolConfig}

// String returns the screen name used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenBitcoinConfig:
		return "bitcoin_config"
	case ScreenP2PoolConfig:
		return "p2pool_config"
	case ScreenFileExplorer:
		return "file_explorer"
	case ScreenEditing:
		return "editing"
	case ScreenEditingValue:
		return "editing_value"
	default:
		return "unknown"
	}
}

// Title returns the sidebar label.
func (s Screen) Title() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenBitcoinConfig:
		return "Bitcoin Config"
	case ScreenP2PoolConfig:
		return "P2Pool Config"
	default:
		return ""
	}
}

// Role returns the daemon role of a config-role screen.
func (s Screen) Role() (entity.DaemonRole, bool) {
	switch s {
	case ScreenBitcoinConfig:
		return entity.DaemonRoleBitcoin, true
	case ScreenP2PoolConfig:
		return entity.DaemonRoleP2Pool, true
	default:
		return 0, false
	}
}

// ScreenForRole returns the config-role screen of role.
func ScreenForRole(role entity.DaemonRole) Screen {
	if role == entity.DaemonRoleP2Pool {
		return ScreenP2PoolConfig
	}
	return ScreenBitcoinConfig
}
