package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemAdapter(t *testing.T) (*Adapter, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/home/u/.bitcoin/wallets", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/home/u/.bitcoin/bitcoin.conf", []byte("server=1\n"), 0o600))
	return NewWithFs(mem, "/home/u"), mem
}

func TestAdapter_Exists(t *testing.T) {
	a, _ := newMemAdapter(t)
	ctx := context.Background()

	ok, err := a.Exists(ctx, "/home/u/.bitcoin/bitcoin.conf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Exists(ctx, "/home/u/missing.conf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_IsDirectory(t *testing.T) {
	a, _ := newMemAdapter(t)
	ctx := context.Background()

	ok, err := a.IsDirectory(ctx, "/home/u/.bitcoin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.IsDirectory(ctx, "/home/u/.bitcoin/bitcoin.conf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = a.IsDirectory(ctx, "/nowhere")
	assert.Error(t, err)
}

func TestAdapter_ReadDir(t *testing.T) {
	a, _ := newMemAdapter(t)

	entries, err := a.ReadDir(context.Background(), "/home/u/.bitcoin")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Name] = e.IsDir
		assert.Equal(t, filepath.Join("/home/u/.bitcoin", e.Name), e.Path)
		assert.False(t, e.IsParent)
	}
	assert.False(t, byName["bitcoin.conf"])
	assert.True(t, byName["wallets"])
}

func TestAdapter_ReadDir_Missing(t *testing.T) {
	a, _ := newMemAdapter(t)

	_, err := a.ReadDir(context.Background(), "/nowhere")
	assert.ErrorContains(t, err, "read directory")
}

func TestAdapter_WriteFileAtomic_ReplacesContentAndKeepsMode(t *testing.T) {
	a, mem := newMemAdapter(t)
	path := "/home/u/.bitcoin/bitcoin.conf"

	err := a.WriteFileAtomic(context.Background(), path, []byte("# RPC\nserver=0\n\n"))
	require.NoError(t, err)

	data, err := afero.ReadFile(mem, path)
	require.NoError(t, err)
	assert.Equal(t, "# RPC\nserver=0\n\n", string(data))

	info, err := mem.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	names, err := afero.ReadDir(mem, "/home/u/.bitcoin")
	require.NoError(t, err)
	for _, n := range names {
		assert.False(t, strings.Contains(n.Name(), ".tmp-"), "temp file left behind: %s", n.Name())
	}
}

func TestAdapter_WriteFileAtomic_NewFile(t *testing.T) {
	a, mem := newMemAdapter(t)
	path := "/home/u/.bitcoin/new.conf"

	require.NoError(t, a.WriteFileAtomic(context.Background(), path, []byte("a=1\n")))

	info, err := mem.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, newFileMode, info.Mode().Perm())
}

func TestAdapter_WriteFileAtomic_Failures(t *testing.T) {
	t.Run("target is a directory", func(t *testing.T) {
		a, _ := newMemAdapter(t)
		err := a.WriteFileAtomic(context.Background(), "/home/u/.bitcoin", []byte("x"))
		assert.ErrorContains(t, err, "is a directory")
	})

	t.Run("read-only filesystem leaves original untouched", func(t *testing.T) {
		_, mem := newMemAdapter(t)
		ro := NewWithFs(afero.NewReadOnlyFs(mem), "/")
		path := "/home/u/.bitcoin/bitcoin.conf"

		err := ro.WriteFileAtomic(context.Background(), path, []byte("server=0\n"))
		require.Error(t, err)

		data, readErr := afero.ReadFile(mem, path)
		require.NoError(t, readErr)
		assert.Equal(t, "server=1\n", string(data))
	})
}

func TestAdapter_WorkingDir(t *testing.T) {
	a, _ := newMemAdapter(t)

	wd, err := a.WorkingDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/u", wd)
}

func TestAdapter_OSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p2pool.conf")
	a := New()

	require.NoError(t, a.WriteFileAtomic(context.Background(), path, []byte("port=9332\n")))

	data, err := a.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "port=9332\n", string(data))
}
