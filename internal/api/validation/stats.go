package validation

import (
	"fmt"
	"strings"
)

// StatEntry mirrors one stat tile in a stats update request.
type StatEntry struct {
	Label string
	Value string
}

// ValidateStatsRequest validates the entries of a stats replace request.
func ValidateStatsRequest(entries []StatEntry) []FieldError {
	var errs []FieldError

	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("stats[%d].label", i),
				Message: "label is required",
			})
		}
		if strings.TrimSpace(e.Value) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("stats[%d].value", i),
				Message: "value is required",
			})
		}
	}

	return errs
}
