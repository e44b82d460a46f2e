package conffile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/domain/conffile"
	"github.com/bnema/pdm/internal/domain/entity"
)

func testSchema() []entity.ConfigSchema {
	return []entity.ConfigSchema{
		{Key: "port", ValueType: entity.ConfigTypeInteger, Section: "Network", Default: "8333"},
		{Key: "txindex", ValueType: entity.ConfigTypeBoolean, Section: "Core", Default: "0"},
		{Key: "rpcuser", ValueType: entity.ConfigTypeString, Section: "RPC", Default: ""},
		{Key: "dbcache", ValueType: entity.ConfigTypeInteger, Section: "Core", Default: "450"},
	}
}

func entryByKey(t *testing.T, entries []*entity.ConfigEntry, key string) *entity.ConfigEntry {
	t.Helper()
	for _, e := range entries {
		if e.Key == key {
			return e
		}
	}
	require.Failf(t, "entry not found", "key %q", key)
	return nil
}

func TestParse(t *testing.T) {
	t.Run("known keys are enabled with trimmed file values", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("  port =  9332 \nrpcuser=alice\n"), testSchema())
		require.NoError(t, err)

		port := entryByKey(t, entries, "port")
		assert.True(t, port.Enabled)
		assert.Equal(t, "9332", port.Value)
		require.NotNil(t, port.Schema)
		assert.Equal(t, "port", port.Schema.Key)

		user := entryByKey(t, entries, "rpcuser")
		assert.True(t, user.Enabled)
		assert.Equal(t, "alice", user.Value)
	})

	t.Run("absent schema keys are disabled defaults", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("port=9332\n"), testSchema())
		require.NoError(t, err)

		for _, key := range []string{"txindex", "rpcuser", "dbcache"} {
			e := entryByKey(t, entries, key)
			assert.False(t, e.Enabled, key)
			assert.Equal(t, e.Schema.Default, e.Value, key)
		}
	})

	t.Run("unknown keys have no schema and are enabled", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("wallet=abc\n"), testSchema())
		require.NoError(t, err)

		wallet := entryByKey(t, entries, "wallet")
		assert.Nil(t, wallet.Schema)
		assert.True(t, wallet.Enabled)
		assert.Equal(t, "abc", wallet.Value)
	})

	t.Run("comments blank lines and headers are skipped", func(t *testing.T) {
		input := "# comment\n\n   # indented comment\n[test]\n=orphan\nport=1\n"
		entries, err := conffile.Parse(strings.NewReader(input), testSchema())
		require.NoError(t, err)

		// port + 3 missing schema rows, nothing else
		assert.Len(t, entries, 4)
		for _, e := range entries {
			assert.NotEmpty(t, e.Key)
			assert.NotEqual(t, "[test]", e.Key)
		}
	})

	t.Run("line without equals is a flag set to 1", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("txindex\nnolisten\n"), testSchema())
		require.NoError(t, err)

		txindex := entryByKey(t, entries, "txindex")
		assert.True(t, txindex.Enabled)
		assert.Equal(t, "1", txindex.Value)

		custom := entryByKey(t, entries, "nolisten")
		assert.Nil(t, custom.Schema)
		assert.Equal(t, "1", custom.Value)
	})

	t.Run("value keeps everything after the first equals", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("rpcauth=user:salt$hash=\n"), testSchema())
		require.NoError(t, err)

		assert.Equal(t, "user:salt$hash=", entryByKey(t, entries, "rpcauth").Value)
	})

	t.Run("found and unknown entries come first in file order", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("zzz=1\nport=2\n"), testSchema())
		require.NoError(t, err)

		require.Len(t, entries, 5)
		assert.Equal(t, "zzz", entries[0].Key)
		assert.Equal(t, "port", entries[1].Key)
		assert.Equal(t, "txindex", entries[2].Key)
	})

	t.Run("example file yields two enabled entries plus defaults", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("port=9332\nwallet=abc\n# comment\n\n"), testSchema())
		require.NoError(t, err)

		var enabled []string
		for _, e := range entries {
			if e.Enabled {
				enabled = append(enabled, e.Key+"="+e.Value)
			}
		}
		assert.Equal(t, []string{"port=9332", "wallet=abc"}, enabled)
		assert.Len(t, entries, 2+len(testSchema())-1)
	})

	t.Run("very long lines are read whole", func(t *testing.T) {
		auth := strings.Repeat("a", 70000)
		entries, err := conffile.Parse(strings.NewReader("port=1\nrpcauth="+auth), testSchema())
		require.NoError(t, err)

		assert.Equal(t, "1", entryByKey(t, entries, "port").Value)
		assert.Equal(t, auth, entryByKey(t, entries, "rpcauth").Value)
	})

	t.Run("leading byte order mark is ignored", func(t *testing.T) {
		entries, err := conffile.Parse(strings.NewReader("\ufeffport=9332\r\ntxindex=1\r\n"), testSchema())
		require.NoError(t, err)

		port := entryByKey(t, entries, "port")
		assert.True(t, port.Enabled)
		assert.NotNil(t, port.Schema)
		assert.Equal(t, "9332", port.Value)
		assert.Equal(t, "1", entryByKey(t, entries, "txindex").Value)
	})

	t.Run("read errors are returned", func(t *testing.T) {
		_, err := conffile.Parse(failingReader{}, testSchema())
		require.Error(t, err)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestDefaults(t *testing.T) {
	entries := conffile.Defaults(testSchema())

	require.Len(t, entries, len(testSchema()))
	for i, e := range entries {
		assert.False(t, e.Enabled)
		assert.Equal(t, testSchema()[i].Key, e.Key)
		assert.Equal(t, testSchema()[i].Default, e.Value)
	}
}

var errBoom = errors.New("boom")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBoom
}
