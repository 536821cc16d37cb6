package httpadapter_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/couchcryptid/storm-controller/internal/adapter/httpadapter"
	"github.com/couchcryptid/storm-controller/internal/controller"
	"github.com/couchcryptid/storm-controller/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockController struct {
	readyErr error
	status   controller.Status
}

func (m *mockController) CheckReadiness(_ context.Context) error { return m.readyErr }

func (m *mockController) Status() controller.Status { return m.status }

func newTestServer(ctrl *mockController) *httpadapter.Server {
	return httpadapter.NewServer(":0", ctrl, slog.Default())
}

func get(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(newTestServer(&mockController{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenSessionStarted(t *testing.T) {
	rec := get(newTestServer(&mockController{}), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503BeforeSessionStart(t *testing.T) {
	rec := get(newTestServer(&mockController{readyErr: fmt.Errorf("session has not started yet")}), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusReturnsControllerState(t *testing.T) {
	srv := newTestServer(&mockController{status: controller.Status{
		Enabled:      true,
		Started:      true,
		Tunables:     map[string]float64{domain.KeyWaveWeight: 1.5},
		PendingStorm: &domain.StormRequest{Radius: 500},
	}})

	rec := get(srv, "/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Enabled      bool               `json:"enabled"`
		Started      bool               `json:"session_started"`
		Tunables     map[string]float64 `json:"tunables"`
		PendingStorm map[string]any     `json:"pending_storm"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Enabled)
	assert.True(t, body.Started)
	assert.Equal(t, 1.5, body.Tunables[domain.KeyWaveWeight])
	assert.Equal(t, 500.0, body.PendingStorm["radius"])
}

func TestStatusOmitsIdleStorm(t *testing.T) {
	rec := get(newTestServer(&mockController{}), "/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pending_storm")
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(&mockController{}), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
