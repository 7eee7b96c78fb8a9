package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/internal/config"
)

func TestRunLogout(t *testing.T) {
	store := config.NewStoreAt(filepath.Join(t.TempDir(), ".reocities"))
	SetCredentialStore(store)
	t.Cleanup(func() { SetCredentialStore(nil) })

	// Logging out without a credential is not an error.
	require.NoError(t, runLogout(LogoutCmd, nil))

	require.NoError(t, store.SaveAPIKey("rc_key"))
	require.NoError(t, runLogout(LogoutCmd, nil))

	key, err := store.LoadAPIKey()
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestRequireAuth(t *testing.T) {
	t.Cleanup(func() { SetAPIClient(nil) })

	SetAPIClient(nil)
	_, err := requireAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")

	SetAPIClient(client.New("", ""))
	_, err = requireAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	SetAPIClient(client.New("", "rc_key"))
	c, err := requireAuth()
	require.NoError(t, err)
	assert.NotNil(t, c)
}
