package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func get(t *testing.T, handler http.Handler, path string) (*http.Response, statusResponse) {
	t.Helper()
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestHealthAlwaysOK(t *testing.T) {
	s := NewServer(Config{ServiceName: "hoopsedge"})
	resp, body := get(t, s.Handler(), "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "hoopsedge", body.Service)
}

func TestReadyReflectsFlag(t *testing.T) {
	s := NewServer(Config{ServiceName: "hoopsedge"})

	resp, body := get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "not_ready", body.Status)

	s.SetReady(true)
	resp, body = get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Checks["service"])
}

func TestReadyChecksQuoteDatabase(t *testing.T) {
	s := NewServer(Config{ServiceName: "hoopsedge", Pinger: stubPinger{err: errors.New("down")}})
	s.SetReady(true)

	resp, body := get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body.Checks["quote_db"], "down")
}

func TestMetricsEndpointServed(t *testing.T) {
	s := NewServer(Config{ServiceName: "hoopsedge", MetricsPath: "/metrics"})
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
