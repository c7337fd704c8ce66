package validation

import (
	"net/mail"
	"strings"

	"github.com/edventure-park/community-api/internal/user"
)

// RegisterRequest mirrors the fields needed for registration validation.
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// ValidateRegisterRequest validates the fields of a registration request.
func ValidateRegisterRequest(req RegisterRequest) []FieldError {
	var errs []FieldError

	if req.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}

	if req.Role == "" {
		errs = append(errs, FieldError{Field: "role", Message: "role is required"})
	} else if !user.Role(req.Role).Valid() {
		errs = append(errs, FieldError{Field: "role", Message: "role must be \"team\" or \"campus_lead\""})
	}

	return errs
}

// LoginRequest mirrors the fields needed for login validation.
type LoginRequest struct {
	Email    string
	Password string
}

// ValidateLoginRequest validates the fields of a login request.
func ValidateLoginRequest(req LoginRequest) []FieldError {
	var errs []FieldError

	if req.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}

	return errs
}
