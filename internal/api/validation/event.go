package validation

import "strings"

// EventRequest mirrors the fields needed for event create/update validation.
type EventRequest struct {
	Title string
	Date  string
}

// ValidateEventRequest validates the fields of an event create or update request.
func ValidateEventRequest(req EventRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if req.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}

	return errs
}
