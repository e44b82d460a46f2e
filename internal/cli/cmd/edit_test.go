package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/domain/entity"
)

func TestEditRoleFor(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		flag    string
		want    entity.DaemonRole
		wantErr bool
	}{
		{name: "bitcoin by name", path: "/home/satoshi/.bitcoin/bitcoin.conf", want: entity.DaemonRoleBitcoin},
		{name: "p2pool by name", path: "/srv/p2pool.conf", want: entity.DaemonRoleP2Pool},
		{name: "p2pool name is case insensitive", path: "/srv/P2Pool-main.conf", want: entity.DaemonRoleP2Pool},
		{name: "unknown name defaults to bitcoin", path: "/srv/node.conf", want: entity.DaemonRoleBitcoin},
		{name: "flag wins over name", path: "/srv/bitcoin.conf", flag: "p2pool", want: entity.DaemonRoleP2Pool},
		{name: "invalid flag", path: "/srv/node.conf", flag: "litecoin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := editRoleFor(tt.path, tt.flag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	exists, err := fileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("[logging]\n"), 0o600))

	exists, err = fileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"edit", "schema", "config", "about", "version", "gen-docs"} {
		assert.True(t, names[want], want)
	}

	sub := make(map[string]bool)
	for _, c := range configCmd.Commands() {
		sub[c.Name()] = true
	}
	for _, want := range []string{"init", "path", "show", "schema"} {
		assert.True(t, sub[want], want)
	}
}

func TestEditHelpDocumentsCustomKeys(t *testing.T) {
	assert.Contains(t, editCmd.Long, `"Custom"`)
	assert.Contains(t, editCmd.Long, "always written on save")
}
