package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndLoad(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), ".reocities"))

	// No credential file yet.
	key, err := store.LoadAPIKey()
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, store.SaveAPIKey("rc_test_1234"))

	key, err = store.LoadAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "rc_test_1234", key)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), ".reocities"))

	require.NoError(t, store.SaveAPIKey("first"))
	require.NoError(t, store.SaveAPIKey("second"))

	key, err := store.LoadAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "second", key)
}

func TestStoreClear(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), ".reocities"))

	removed, err := store.Clear()
	require.NoError(t, err)
	assert.False(t, removed, "clearing a missing credential should be a no-op")

	require.NoError(t, store.SaveAPIKey("rc_test_1234"))

	removed, err = store.Clear()
	require.NoError(t, err)
	assert.True(t, removed)

	key, err := store.LoadAPIKey()
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("REOCITIES_API_URL", "https://staging.reocities.xyz")
	t.Setenv("REOCITIES_API_KEY", "rc_env_key")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.reocities.xyz", e.BaseURL)
	assert.Equal(t, "rc_env_key", e.APIKey)
}

func TestLoadEnvEmpty(t *testing.T) {
	t.Setenv("REOCITIES_API_URL", "")
	t.Setenv("REOCITIES_API_KEY", "")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, e.BaseURL)
	assert.Empty(t, e.APIKey)
}
