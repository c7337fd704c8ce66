package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/api/validation"
	"github.com/edventure-park/community-api/internal/stats"
)

type statEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type statsUpdateRequest struct {
	Stats []statEntry `json:"stats"`
}

type statResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

func toStatResponse(s *stats.Stat) statResponse {
	return statResponse{
		ID:       s.ID,
		Category: s.Category,
		Label:    s.Label,
		Value:    s.Value,
		Icon:     s.Icon,
		Color:    s.Color,
	}
}

// StatsHandler handles dashboard statistics endpoints.
type StatsHandler struct {
	repo stats.Repository
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(repo stats.Repository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// List handles GET /api/stats/{category}. Unknown categories return an
// empty list.
func (h *StatsHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	entries, err := h.repo.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		slog.Error("failed to list stats", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list stats", requestID)
		return
	}

	items := make([]statResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toStatResponse(&entries[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// Replace handles PUT /api/stats/{category}: the category's full tile set
// is replaced with the request payload, each tile assigned a fresh id.
func (h *StatsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	category := chi.URLParam(r, "category")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req statsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	toValidate := make([]validation.StatEntry, 0, len(req.Stats))
	for _, e := range req.Stats {
		toValidate = append(toValidate, validation.StatEntry{Label: e.Label, Value: e.Value})
	}
	if fieldErrors := validation.ValidateStatsRequest(toValidate); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	entries := make([]stats.Stat, 0, len(req.Stats))
	for _, e := range req.Stats {
		entries = append(entries, stats.Stat{
			ID:       uuid.NewString(),
			Category: category,
			Label:    e.Label,
			Value:    e.Value,
			Icon:     e.Icon,
			Color:    e.Color,
		})
	}

	saved, err := h.repo.ReplaceCategory(r.Context(), category, entries)
	if err != nil {
		slog.Error("failed to replace stats", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update stats", requestID)
		return
	}

	items := make([]statResponse, 0, len(saved))
	for i := range saved {
		items = append(items, toStatResponse(&saved[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}
