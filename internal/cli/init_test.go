package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reocities/cli/internal/site"
)

func TestRunInitScaffoldsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mysite")

	require.NoError(t, runInit(InitCmd, []string{dir}))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h1>Welcome to my site!</h1>")

	manifest, err := site.LoadManifest(dir)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Empty(t, manifest.Folder)
	assert.Empty(t, manifest.Ignore)
}

func TestRunInitKeepsExistingIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("mine"), 0o644))

	require.NoError(t, runInit(InitCmd, []string{dir}))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(index))
}

func TestRunInitRefusesReinitialize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(InitCmd, []string{dir}))

	err := runInit(InitCmd, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
