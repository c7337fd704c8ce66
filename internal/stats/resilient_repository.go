package stats

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

func (r *ResilientRepository) ListByCategory(ctx context.Context, category string) ([]Stat, error) {
	return store.Attempt(ctx, r.deg, "listByCategory",
		func(ctx context.Context) ([]Stat, error) { return r.primary.ListByCategory(ctx, category) },
		func(ctx context.Context) ([]Stat, error) { return r.fallback.ListByCategory(ctx, category) })
}

func (r *ResilientRepository) ReplaceCategory(ctx context.Context, category string, entries []Stat) ([]Stat, error) {
	return store.Attempt(ctx, r.deg, "replaceCategory",
		func(ctx context.Context) ([]Stat, error) { return r.primary.ReplaceCategory(ctx, category, entries) },
		func(ctx context.Context) ([]Stat, error) { return r.fallback.ReplaceCategory(ctx, category, entries) })
}
