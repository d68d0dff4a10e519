package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/cronclaw/internal/config"
	"github.com/aatumaykin/cronclaw/internal/constants"
)

// newTestServer serves a minimal happy-path API.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"account": {"id": "acc_1", "email": "u@example.com", "plan": "free"}, "gateway": {"connected": false}, "jobCount": 0}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// setupCmdTest isolates config dir and flags for one command test.
func setupCmdTest(t *testing.T, apiURL string) {
	t.Helper()
	configDirOverride = t.TempDir()
	flagAPIURL = apiURL
	t.Setenv(constants.EnvAPIKey, "")
	t.Setenv(constants.EnvAPIURL, "")
	t.Cleanup(func() {
		configDirOverride = ""
		flagAPIURL = ""
	})
}

func TestLoginStoresVerifiedCredentials(t *testing.T) {
	server := newTestServer(t)
	setupCmdTest(t, server.URL)

	runLogin(loginCmd, []string{"cc_live_abc123"})

	creds, err := config.NewStore(configDirOverride).Load()
	require.NoError(t, err)
	assert.Equal(t, "cc_live_abc123", creds.APIKey)
	assert.Equal(t, server.URL, creds.APIURL)
}

func TestLogoutRemovesCredentials(t *testing.T) {
	server := newTestServer(t)
	setupCmdTest(t, server.URL)

	runLogin(loginCmd, []string{"cc_live_abc123"})
	runLogout(logoutCmd, nil)

	store := config.NewStore(configDirOverride)
	_, err := store.Load()
	assert.ErrorIs(t, err, config.ErrNotLoggedIn)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestWhoami(t *testing.T) {
	server := newTestServer(t)
	setupCmdTest(t, server.URL)

	runLogin(loginCmd, []string{"cc_live_abc123"})

	// Success path: must not exit
	runWhoami(whoamiCmd, nil)
}
