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
	"github.com/edventure-park/community-api/internal/cohort"
)

type cohortRequest struct {
	Name                string   `json:"name"`
	Program             string   `json:"program"`
	Status              string   `json:"status"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	Participants        int      `json:"participants"`
	Progress            int      `json:"progress"`
	Milestones          []string `json:"milestones"`
	CompletedMilestones int      `json:"completed_milestones"`
}

type cohortResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Program             string   `json:"program"`
	Status              string   `json:"status"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	Participants        int      `json:"participants"`
	Progress            int      `json:"progress"`
	Milestones          []string `json:"milestones"`
	CompletedMilestones int      `json:"completed_milestones"`
	CreatedAt           string   `json:"created_at"`
}

func toCohortResponse(c *cohort.Cohort) cohortResponse {
	return cohortResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Program:             c.Program,
		Status:              c.Status,
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		Participants:        c.Participants,
		Progress:            c.Progress,
		Milestones:          c.Milestones,
		CompletedMilestones: c.CompletedMilestones,
		CreatedAt:           c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (req cohortRequest) toModel() *cohort.Cohort {
	milestones := req.Milestones
	if milestones == nil {
		milestones = []string{}
	}
	return &cohort.Cohort{
		Name:                req.Name,
		Program:             req.Program,
		Status:              req.Status,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Participants:        req.Participants,
		Progress:            req.Progress,
		Milestones:          milestones,
		CompletedMilestones: req.CompletedMilestones,
	}
}

// CohortHandler handles cohort CRUD endpoints.
type CohortHandler struct {
	repo cohort.Repository
}

// NewCohortHandler creates a new CohortHandler.
func NewCohortHandler(repo cohort.Repository) *CohortHandler {
	return &CohortHandler{repo: repo}
}

// List handles GET /api/cohorts.
func (h *CohortHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	cohorts, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list cohorts", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cohorts", requestID)
		return
	}

	items := make([]cohortResponse, 0, len(cohorts))
	for i := range cohorts {
		items = append(items, toCohortResponse(&cohorts[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// GetByID handles GET /api/cohorts/{id}.
func (h *CohortHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	c, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, cohort.ErrCohortNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Cohort not found", requestID)
			return
		}
		slog.Error("failed to get cohort", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get cohort", requestID)
		return
	}

	response.Success(w, http.StatusOK, toCohortResponse(c), requestID)
}

// Create handles POST /api/cohorts.
func (h *CohortHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req cohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	if fieldErrors := validateCohort(req); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	c := req.toModel()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), c); err != nil {
		slog.Error("failed to create cohort", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create cohort", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toCohortResponse(c), requestID)
}

// Update handles PUT /api/cohorts/{id}.
func (h *CohortHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req cohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	if fieldErrors := validateCohort(req); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	updated, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		if errors.Is(err, cohort.ErrCohortNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Cohort not found", requestID)
			return
		}
		slog.Error("failed to update cohort", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update cohort", requestID)
		return
	}

	response.Success(w, http.StatusOK, toCohortResponse(updated), requestID)
}

// Delete handles DELETE /api/cohorts/{id}.
func (h *CohortHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, cohort.ErrCohortNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Cohort not found", requestID)
			return
		}
		slog.Error("failed to delete cohort", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete cohort", requestID)
		return
	}

	response.NoContent(w)
}

func validateCohort(req cohortRequest) []validation.FieldError {
	return validation.ValidateCohortRequest(validation.CohortRequest{
		Name:      req.Name,
		Program:   req.Program,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
}
