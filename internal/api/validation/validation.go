// Package validation checks request field shape before anything reaches a
// repository. Each validator returns a list of per-field errors; an empty
// list means the request is well formed.
package validation

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
