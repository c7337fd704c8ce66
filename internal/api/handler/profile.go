package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/user"
)

type profileUpdateRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	College      *string  `json:"college"`
	Department   *string  `json:"department"`
	Bio          *string  `json:"bio"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
}

// ProfileHandler handles the caller's own profile endpoints.
type ProfileHandler struct {
	users user.Repository
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(users user.Repository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	u, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "User not found", requestID)
			return
		}
		slog.Error("failed to load profile", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(u), requestID)
}

// Update handles PUT /api/profile. Only the caller-writable fields are
// applied; id, email, role and credentials in the payload are ignored.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), identity.UserID, user.ProfileUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		College:      req.College,
		Department:   req.Department,
		Bio:          req.Bio,
		Skills:       req.Skills,
		Achievements: req.Achievements,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "User not found", requestID)
			return
		}
		slog.Error("failed to update profile", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(u), requestID)
}
