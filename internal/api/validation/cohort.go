package validation

import "strings"

// CohortRequest mirrors the fields needed for cohort create/update validation.
type CohortRequest struct {
	Name      string
	Program   string
	Status    string
	StartDate string
	EndDate   string
}

// ValidateCohortRequest validates the fields of a cohort create or update request.
func ValidateCohortRequest(req CohortRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Program) == "" {
		errs = append(errs, FieldError{Field: "program", Message: "program is required"})
	}
	if strings.TrimSpace(req.Status) == "" {
		errs = append(errs, FieldError{Field: "status", Message: "status is required"})
	}
	if req.StartDate == "" {
		errs = append(errs, FieldError{Field: "start_date", Message: "start_date is required"})
	}
	if req.EndDate == "" {
		errs = append(errs, FieldError{Field: "end_date", Message: "end_date is required"})
	}

	return errs
}
