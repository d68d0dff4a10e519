package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/cronclaw/internal/api"
)

// newJobServer records job mutations and serves a one-job list.
func newJobServer(t *testing.T) (*httptest.Server, *[]api.CreateJobRequest) {
	t.Helper()

	var created []api.CreateJobRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"account": {"id": "acc_1", "email": "u@example.com", "plan": "free"}, "gateway": {"connected": false}, "jobCount": 1}}`))
	})
	mux.HandleFunc("/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data": [{"id": "job_a1b2c3d4", "name": "Morning report", "cron": "0 9 * * *", "integrationType": "openclaw", "enabled": true, "runCount": 2, "failCount": 0, "createdAt": "2026-01-10T09:00:00Z"}]}`))
		case http.MethodPost:
			var req api.CreateJobRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			created = append(created, req)
			w.Write([]byte(`{"data": {"id": "job_new12345", "name": "x", "cron": "0 9 * * *", "integrationType": "openclaw", "enabled": true, "createdAt": "2026-03-01T00:00:00Z"}}`))
		}
	})
	mux.HandleFunc("/v1/jobs/job_a1b2c3d4", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPatch:
			w.Write([]byte(`{"data": {"id": "job_a1b2c3d4", "name": "Renamed", "cron": "0 9 * * *", "integrationType": "openclaw", "enabled": true, "createdAt": "2026-01-10T09:00:00Z"}}`))
		}
	})
	mux.HandleFunc("/v1/jobs/job_a1b2c3d4/trigger", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	})
	mux.HandleFunc("/v1/jobs/job_a1b2c3d4/enable", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"id": "job_a1b2c3d4", "name": "Morning report", "cron": "0 9 * * *", "integrationType": "openclaw", "enabled": true, "createdAt": "2026-01-10T09:00:00Z"}}`))
	})
	mux.HandleFunc("/v1/jobs/job_a1b2c3d4/disable", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"id": "job_a1b2c3d4", "name": "Morning report", "cron": "0 9 * * *", "integrationType": "openclaw", "enabled": false, "createdAt": "2026-01-10T09:00:00Z"}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &created
}

func loginForTest(t *testing.T, apiURL string) {
	t.Helper()
	setupCmdTest(t, apiURL)
	runLogin(loginCmd, []string{"cc_live_abc123"})
}

func resetJobFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, flag := range []string{
			"name", "cron", "message", "integration", "agent", "channel",
			"phone", "chat-id", "reply-to", "webhook-url", "method",
			"headers", "body", "timezone", "file",
		} {
			if f := jobCreateCmd.Flags().Lookup(flag); f != nil {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
			if f := jobUpdateCmd.Flags().Lookup(flag); f != nil {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		}
	})
}

func TestJobList(t *testing.T) {
	server, _ := newJobServer(t)
	loginForTest(t, server.URL)

	// Success path: must not exit
	runJobList(jobListCmd, nil)
}

func TestJobCreateFromFlags(t *testing.T) {
	server, created := newJobServer(t)
	loginForTest(t, server.URL)
	resetJobFlags(t)

	require.NoError(t, jobCreateCmd.ParseFlags([]string{
		"--name", "Morning report",
		"--cron", "0 9 * * *",
		"--integration", "openclaw",
		"--channel", "telegram",
		"--chat-id", "123456789",
		"--message", "Good morning!",
	}))

	runJobCreate(jobCreateCmd, nil)

	require.Len(t, *created, 1)
	got := (*created)[0]
	assert.Equal(t, "Morning report", got.Name)
	assert.Equal(t, "openclaw", got.IntegrationType)
	assert.Equal(t, "123456789", got.Deliver)
}

func TestJobCreateFromFile(t *testing.T) {
	server, created := newJobServer(t)
	loginForTest(t, server.URL)
	resetJobFlags(t)

	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Nightly sync
cron: "0 3 * * *"
integration: webhook
webhook:
  url: https://example.com/hook
  method: post
`), 0644))

	require.NoError(t, jobCreateCmd.ParseFlags([]string{"--file", path}))

	runJobCreate(jobCreateCmd, nil)

	require.Len(t, *created, 1)
	got := (*created)[0]
	assert.Equal(t, "Nightly sync", got.Name)
	assert.Equal(t, "webhook", got.IntegrationType)
	assert.Equal(t, "POST", got.WebhookMethod)
}

func TestJobCreateFlagsOverrideFile(t *testing.T) {
	server, created := newJobServer(t)
	loginForTest(t, server.URL)
	resetJobFlags(t)

	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Template name
cron: "0 3 * * *"
integration: webhook
webhook:
  url: https://example.com/hook
  method: POST
`), 0644))

	require.NoError(t, jobCreateCmd.ParseFlags([]string{
		"--file", path,
		"--name", "Overridden name",
	}))

	runJobCreate(jobCreateCmd, nil)

	require.Len(t, *created, 1)
	assert.Equal(t, "Overridden name", (*created)[0].Name)
}

func TestJobUpdate(t *testing.T) {
	server, _ := newJobServer(t)
	loginForTest(t, server.URL)
	resetJobFlags(t)

	require.NoError(t, jobUpdateCmd.ParseFlags([]string{"--name", "Renamed"}))

	runJobUpdate(jobUpdateCmd, []string{"job_a1b2c3d4"})
}

func TestJobRemove(t *testing.T) {
	server, _ := newJobServer(t)
	loginForTest(t, server.URL)

	runJobRemove(jobRemoveCmd, []string{"job_a1b2c3d4"})
}

func TestJobTriggerAsync(t *testing.T) {
	server, _ := newJobServer(t)
	loginForTest(t, server.URL)

	flagTriggerSync = false
	runJobTrigger(jobTriggerCmd, []string{"job_a1b2c3d4"})
}

func TestJobEnableDisable(t *testing.T) {
	server, _ := newJobServer(t)
	loginForTest(t, server.URL)

	runJobEnable(jobEnableCmd, []string{"job_a1b2c3d4"})
	runJobDisable(jobDisableCmd, []string{"job_a1b2c3d4"})
}
