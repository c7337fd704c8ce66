package validation

import "strings"

// CampusLeadRequest mirrors the fields needed for campus-lead validation.
type CampusLeadRequest struct {
	Name     string
	College  string
	Location string
	Status   string
}

// ValidateCampusLeadRequest validates the fields of a campus-lead create or update request.
func ValidateCampusLeadRequest(req CampusLeadRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.College) == "" {
		errs = append(errs, FieldError{Field: "college", Message: "college is required"})
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, FieldError{Field: "location", Message: "location is required"})
	}
	if strings.TrimSpace(req.Status) == "" {
		errs = append(errs, FieldError{Field: "status", Message: "status is required"})
	}

	return errs
}
