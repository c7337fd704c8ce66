package cohort

import (
	"context"
	"errors"
)

// ErrCohortNotFound is returned when a cohort record is not found.
var ErrCohortNotFound = errors.New("cohort not found")

// Repository provides CRUD operations on cohorts. Update replaces every
// caller-writable field; id and creation time are preserved.
type Repository interface {
	List(ctx context.Context) ([]Cohort, error)
	GetByID(ctx context.Context, id string) (*Cohort, error)
	Create(ctx context.Context, c *Cohort) error
	Update(ctx context.Context, id string, c *Cohort) (*Cohort, error)
	Delete(ctx context.Context, id string) error
}
