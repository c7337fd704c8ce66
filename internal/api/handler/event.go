package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/api/validation"
	"github.com/edventure-park/community-api/internal/event"
)

type eventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	CohortID    *string `json:"cohort_id"`
	CreatedBy   string  `json:"created_by"`
}

type eventResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	CohortID    *string  `json:"cohort_id"`
	CreatedBy   string   `json:"created_by"`
	Attendees   []string `json:"attendees"`
	CreatedAt   string   `json:"created_at"`
}

func toEventResponse(e *event.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		CohortID:    e.CohortID,
		CreatedBy:   e.CreatedBy,
		Attendees:   e.Attendees,
		CreatedAt:   e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// EventHandler handles event CRUD and attendance endpoints.
type EventHandler struct {
	repo event.Repository
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(repo event.Repository) *EventHandler {
	return &EventHandler{repo: repo}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	events, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list events", requestID)
		return
	}

	items := make([]eventResponse, 0, len(events))
	for i := range events {
		items = append(items, toEventResponse(&events[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// GetByID handles GET /api/events/{id}.
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	e, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Event not found", requestID)
			return
		}
		slog.Error("failed to get event", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get event", requestID)
		return
	}

	response.Success(w, http.StatusOK, toEventResponse(e), requestID)
}

// Create handles POST /api/events. Any authenticated role may create events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateEventRequest(validation.EventRequest{
		Title: req.Title,
		Date:  req.Date,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = identity.UserID
	}

	e := &event.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		CohortID:    req.CohortID,
		CreatedBy:   createdBy,
		Attendees:   []string{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.repo.Create(r.Context(), e); err != nil {
		slog.Error("failed to create event", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toEventResponse(e), requestID)
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateEventRequest(validation.EventRequest{
		Title: req.Title,
		Date:  req.Date,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	updated, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &event.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		CohortID:    req.CohortID,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Event not found", requestID)
			return
		}
		slog.Error("failed to update event", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update event", requestID)
		return
	}

	response.Success(w, http.StatusOK, toEventResponse(updated), requestID)
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Event not found", requestID)
			return
		}
		slog.Error("failed to delete event", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete event", requestID)
		return
	}

	response.NoContent(w)
}

// Attend handles POST /api/events/{id}/attend. Registration is idempotent
// per caller.
func (h *EventHandler) Attend(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	e, err := h.repo.AddAttendee(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Event not found", requestID)
			return
		}
		slog.Error("failed to register attendance", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register attendance", requestID)
		return
	}

	response.Success(w, http.StatusOK, toEventResponse(e), requestID)
}
