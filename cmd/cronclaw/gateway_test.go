package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayServer(t *testing.T) (*httptest.Server, *map[string]string) {
	t.Helper()

	var lastSet map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"account": {"id": "acc_1", "email": "u@example.com", "plan": "free"}, "gateway": {"connected": true}, "jobCount": 0}}`))
	})
	mux.HandleFunc("/v1/gateway", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&lastSet))
			w.Write([]byte(`{"data": {"url": "` + lastSet["url"] + `", "connected": false}}`))
		case http.MethodGet:
			w.Write([]byte(`{"data": {"url": "https://gw.example.com", "connected": true, "lastSeenAt": "2026-03-01T10:00:00Z"}}`))
		}
	})
	mux.HandleFunc("/v1/gateway/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"ok": true, "latencyMs": 42}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &lastSet
}

func TestGatewaySet(t *testing.T) {
	server, lastSet := newGatewayServer(t)
	loginForTest(t, server.URL)

	runGatewaySet(gatewaySetCmd, []string{"https://gw.example.com/bridge"})

	require.NotNil(t, *lastSet)
	assert.Equal(t, "https://gw.example.com/bridge", (*lastSet)["url"])
}

func TestGatewayStatus(t *testing.T) {
	server, _ := newGatewayServer(t)
	loginForTest(t, server.URL)

	runGatewayStatus(gatewayStatusCmd, nil)
}

func TestGatewayTest(t *testing.T) {
	server, _ := newGatewayServer(t)
	loginForTest(t, server.URL)

	runGatewayTest(gatewayTestCmd, nil)
}
