package event

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// ResilientRepository serves from the primary repository and degrades to
// the fallback when the primary is unavailable.
type ResilientRepository struct {
	primary  Repository
	fallback Repository
	deg      *store.Degrader
}

// NewResilientRepository wires a primary and fallback repository together.
func NewResilientRepository(primary, fallback Repository, deg *store.Degrader) Repository {
	return &ResilientRepository{primary: primary, fallback: fallback, deg: deg}
}

func (r *ResilientRepository) List(ctx context.Context) ([]Event, error) {
	return store.Attempt(ctx, r.deg, "list",
		func(ctx context.Context) ([]Event, error) { return r.primary.List(ctx) },
		func(ctx context.Context) ([]Event, error) { return r.fallback.List(ctx) })
}

func (r *ResilientRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	return store.Attempt(ctx, r.deg, "getById",
		func(ctx context.Context) (*Event, error) { return r.primary.GetByID(ctx, id) },
		func(ctx context.Context) (*Event, error) { return r.fallback.GetByID(ctx, id) })
}

func (r *ResilientRepository) Create(ctx context.Context, e *Event) error {
	return store.AttemptErr(ctx, r.deg, "create",
		func(ctx context.Context) error { return r.primary.Create(ctx, e) },
		func(ctx context.Context) error { return r.fallback.Create(ctx, e) })
}

func (r *ResilientRepository) Update(ctx context.Context, id string, e *Event) (*Event, error) {
	return store.Attempt(ctx, r.deg, "update",
		func(ctx context.Context) (*Event, error) { return r.primary.Update(ctx, id, e) },
		func(ctx context.Context) (*Event, error) { return r.fallback.Update(ctx, id, e) })
}

func (r *ResilientRepository) Delete(ctx context.Context, id string) error {
	return store.AttemptErr(ctx, r.deg, "delete",
		func(ctx context.Context) error { return r.primary.Delete(ctx, id) },
		func(ctx context.Context) error { return r.fallback.Delete(ctx, id) })
}

func (r *ResilientRepository) AddAttendee(ctx context.Context, eventID, userID string) (*Event, error) {
	return store.Attempt(ctx, r.deg, "addAttendee",
		func(ctx context.Context) (*Event, error) { return r.primary.AddAttendee(ctx, eventID, userID) },
		func(ctx context.Context) (*Event, error) { return r.fallback.AddAttendee(ctx, eventID, userID) })
}
