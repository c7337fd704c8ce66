package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/api/validation"
	"github.com/edventure-park/community-api/internal/campuslead"
)

type campusLeadRequest struct {
	UserID          *string `json:"user_id"`
	Name            string  `json:"name"`
	College         string  `json:"college"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	EventsOrganized int     `json:"events_organized"`
	StudentsReached int     `json:"students_reached"`
	Performance     string  `json:"performance"`
	LastActivity    string  `json:"last_activity"`
}

type campusLeadResponse struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id"`
	Name            string  `json:"name"`
	College         string  `json:"college"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	EventsOrganized int     `json:"events_organized"`
	StudentsReached int     `json:"students_reached"`
	Performance     string  `json:"performance"`
	LastActivity    string  `json:"last_activity"`
}

func toCampusLeadResponse(l *campuslead.CampusLead) campusLeadResponse {
	return campusLeadResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		Name:            l.Name,
		College:         l.College,
		Location:        l.Location,
		Status:          l.Status,
		EventsOrganized: l.EventsOrganized,
		StudentsReached: l.StudentsReached,
		Performance:     l.Performance,
		LastActivity:    l.LastActivity,
	}
}

func (req campusLeadRequest) toModel() *campuslead.CampusLead {
	return &campuslead.CampusLead{
		UserID:          req.UserID,
		Name:            req.Name,
		College:         req.College,
		Location:        req.Location,
		Status:          req.Status,
		EventsOrganized: req.EventsOrganized,
		StudentsReached: req.StudentsReached,
		Performance:     req.Performance,
		LastActivity:    req.LastActivity,
	}
}

// CampusLeadHandler handles campus-lead directory endpoints.
type CampusLeadHandler struct {
	repo campuslead.Repository
}

// NewCampusLeadHandler creates a new CampusLeadHandler.
func NewCampusLeadHandler(repo campuslead.Repository) *CampusLeadHandler {
	return &CampusLeadHandler{repo: repo}
}

// List handles GET /api/campus-leads.
func (h *CampusLeadHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	leads, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list campus leads", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list campus leads", requestID)
		return
	}

	items := make([]campusLeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, toCampusLeadResponse(&leads[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// GetByID handles GET /api/campus-leads/{id}.
func (h *CampusLeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	l, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, campuslead.ErrLeadNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Campus lead not found", requestID)
			return
		}
		slog.Error("failed to get campus lead", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get campus lead", requestID)
		return
	}

	response.Success(w, http.StatusOK, toCampusLeadResponse(l), requestID)
}

// Create handles POST /api/campus-leads.
func (h *CampusLeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req campusLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	if fieldErrors := validateCampusLead(req); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	l := req.toModel()
	l.ID = uuid.NewString()

	if err := h.repo.Create(r.Context(), l); err != nil {
		slog.Error("failed to create campus lead", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create campus lead", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toCampusLeadResponse(l), requestID)
}

// Update handles PUT /api/campus-leads/{id}.
func (h *CampusLeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req campusLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	if fieldErrors := validateCampusLead(req); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	updated, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		if errors.Is(err, campuslead.ErrLeadNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Campus lead not found", requestID)
			return
		}
		slog.Error("failed to update campus lead", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update campus lead", requestID)
		return
	}

	response.Success(w, http.StatusOK, toCampusLeadResponse(updated), requestID)
}

// Delete handles DELETE /api/campus-leads/{id}.
func (h *CampusLeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, campuslead.ErrLeadNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Campus lead not found", requestID)
			return
		}
		slog.Error("failed to delete campus lead", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete campus lead", requestID)
		return
	}

	response.NoContent(w)
}

func validateCampusLead(req campusLeadRequest) []validation.FieldError {
	return validation.ValidateCampusLeadRequest(validation.CampusLeadRequest{
		Name:     req.Name,
		College:  req.College,
		Location: req.Location,
		Status:   req.Status,
	})
}
