package user

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// ResilientRepository serves every operation from the primary repository
// first and degrades to the fallback when the primary is unavailable.
// Fallback writes live only in process memory.
type ResilientRepository struct {
	primary  Repository
	fallback Repository
	deg      *store.Degrader
}

// NewResilientRepository wires a primary and fallback repository together.
func NewResilientRepository(primary, fallback Repository, deg *store.Degrader) Repository {
	return &ResilientRepository{primary: primary, fallback: fallback, deg: deg}
}

func (r *ResilientRepository) Create(ctx context.Context, u *User) error {
	return store.AttemptErr(ctx, r.deg, "create",
		func(ctx context.Context) error { return r.primary.Create(ctx, u) },
		func(ctx context.Context) error { return r.fallback.Create(ctx, u) })
}

func (r *ResilientRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return store.Attempt(ctx, r.deg, "getById",
		func(ctx context.Context) (*User, error) { return r.primary.GetByID(ctx, id) },
		func(ctx context.Context) (*User, error) { return r.fallback.GetByID(ctx, id) })
}

func (r *ResilientRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return store.Attempt(ctx, r.deg, "getByEmail",
		func(ctx context.Context) (*User, error) { return r.primary.GetByEmail(ctx, email) },
		func(ctx context.Context) (*User, error) { return r.fallback.GetByEmail(ctx, email) })
}

func (r *ResilientRepository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error) {
	return store.Attempt(ctx, r.deg, "updateProfile",
		func(ctx context.Context) (*User, error) { return r.primary.UpdateProfile(ctx, id, upd) },
		func(ctx context.Context) (*User, error) { return r.fallback.UpdateProfile(ctx, id, upd) })
}
