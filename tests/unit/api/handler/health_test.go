package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/api/handler"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error { return p.err }

func TestHealth_PrimaryConnected(t *testing.T) {
	h := handler.NewHealthHandler(&stubPinger{}, "1.2.3")

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.2.3", data["version"])

	db := data["database"].(map[string]interface{})
	assert.Equal(t, true, db["connected"])
	assert.Equal(t, "primary", db["mode"])
}

func TestHealth_PrimaryUnreachable(t *testing.T) {
	h := handler.NewHealthHandler(&stubPinger{err: errors.New("connection refused")}, "dev")

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code, "degraded still serves traffic")
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])

	db := data["database"].(map[string]interface{})
	assert.Equal(t, false, db["connected"])
	assert.Equal(t, "memory", db["mode"])
}

func TestHealth_MemoryOnlyMode(t *testing.T) {
	h := handler.NewHealthHandler(nil, "dev")

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
	db := data["database"].(map[string]interface{})
	assert.Equal(t, "memory", db["mode"])
}

func TestRoot_Info(t *testing.T) {
	h := handler.NewHealthHandler(nil, "dev")

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "/api/health", data["health"])
	assert.NotEmpty(t, data["message"])
}
