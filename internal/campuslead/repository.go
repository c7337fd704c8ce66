package campuslead

import (
	"context"
	"errors"
)

// ErrLeadNotFound is returned when a campus lead record is not found.
var ErrLeadNotFound = errors.New("campus lead not found")

// Repository provides CRUD operations on the campus-lead directory.
type Repository interface {
	List(ctx context.Context) ([]CampusLead, error)
	GetByID(ctx context.Context, id string) (*CampusLead, error)
	Create(ctx context.Context, l *CampusLead) error
	Update(ctx context.Context, id string, l *CampusLead) (*CampusLead, error)
	Delete(ctx context.Context, id string) error
}
