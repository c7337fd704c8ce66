package handler

import (
	"context"
	"net/http"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
)

// Pinger verifies connectivity to the primary store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the liveness and root info endpoints.
type HealthHandler struct {
	db      Pinger // nil in memory-only mode
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type databaseStatus struct {
	Connected bool   `json:"connected"`
	Mode      string `json:"mode"`
}

type healthData struct {
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	Version  string         `json:"version"`
	Database databaseStatus `json:"database"`
}

// Health handles GET /api/health. A missing or unreachable primary store
// reports degraded; the service itself keeps serving from memory.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	db := databaseStatus{Mode: "memory"}
	if h.db != nil && h.db.Ping(r.Context()) == nil {
		db.Connected = true
		db.Mode = "primary"
	}

	status := "healthy"
	if !db.Connected {
		status = "degraded"
	}

	response.Success(w, http.StatusOK, healthData{
		Status:   status,
		Message:  "EdVenture Park Community API is running",
		Version:  h.version,
		Database: db,
	}, requestID)
}

type rootData struct {
	Message string `json:"message"`
	Health  string `json:"health"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	response.Success(w, http.StatusOK, rootData{
		Message: "Welcome to the EdVenture Park Community API",
		Health:  "/api/health",
	}, requestID)
}
