package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/api/validation"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/user"
)

type registerRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone"`
	Location   *string `json:"location"`
	College    *string `json:"college"`
	Department *string `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	College      *string  `json:"college"`
	Department   *string  `json:"department"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	JoinedDate   string   `json:"joined_date"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Location:     u.Location,
		College:      u.College,
		Department:   u.Department,
		Bio:          u.Bio,
		Skills:       u.Skills,
		Achievements: u.Achievements,
		JoinedDate:   u.JoinedDate.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// AuthHandler handles registration, login and the current-user endpoint.
type AuthHandler struct {
	svc   *auth.Service
	users user.Repository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *auth.Service, users user.Repository) *AuthHandler {
	return &AuthHandler{svc: svc, users: users}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateRegisterRequest(validation.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	u, token, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       user.Role(req.Role),
		Phone:      req.Phone,
		Location:   req.Location,
		College:    req.College,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			response.Err(w, http.StatusBadRequest, "DUPLICATE_EMAIL", "Email already registered", requestID)
			return
		}
		slog.Error("failed to register user", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register", requestID)
		return
	}

	response.Success(w, http.StatusCreated, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(u),
	}, requestID)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateLoginRequest(validation.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect email or password", requestID)
			return
		}
		slog.Error("failed to log in user", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in", requestID)
		return
	}

	response.Success(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(u),
	}, requestID)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	u, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "User not found", requestID)
			return
		}
		slog.Error("failed to load current user", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user", requestID)
		return
	}

	response.Success(w, http.StatusOK, toUserResponse(u), requestID)
}
