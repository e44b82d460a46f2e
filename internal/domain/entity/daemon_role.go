package entity

import (
	"fmt"
	"strings"
)

// DaemonRole identifies which kind of daemon configuration a session edits.
type DaemonRole int

const (
	DaemonRoleBitcoin DaemonRole = iota
	DaemonRoleP2Pool
)

// AllDaemonRoles lists roles in sidebar order.
func AllDaemonRoles() []DaemonRole {
	return []DaemonRole{DaemonRoleBitcoin, DaemonRoleP2Pool}
}

// String returns the lowercase identifier used on the command line.
func (r DaemonRole) String() string {
	switch r {
	case DaemonRoleBitcoin:
		return "bitcoin"
	case DaemonRoleP2Pool:
		return "p2pool"
	default:
		return "unknown"
	}
}

// Title returns the human-readable role name.
func (r DaemonRole) Title() string {
	switch r {
	case DaemonRoleBitcoin:
		return "Bitcoin"
	case DaemonRoleP2Pool:
		return "P2Pool"
	default:
		return "Unknown"
	}
}

// FileName returns the conventional configuration file name for the role.
func (r DaemonRole) FileName() string {
	switch r {
	case DaemonRoleBitcoin:
		return "bitcoin.conf"
	case DaemonRoleP2Pool:
		return "p2pool.conf"
	default:
		return ""
	}
}

// ParseDaemonRole parses a role identifier (case-insensitive).
func ParseDaemonRole(s string) (DaemonRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitcoin", "bitcoind", "btc":
		return DaemonRoleBitcoin, nil
	case "p2pool":
		return DaemonRoleP2Pool, nil
	default:
		return 0, fmt.Errorf("unknown daemon role %q (expected bitcoin or p2pool)", s)
	}
}
