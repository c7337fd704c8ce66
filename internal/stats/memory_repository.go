package stats

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on an in-process collection.
type MemoryRepository struct {
	stats *store.Collection[Stat]
}

// NewMemoryRepository creates an in-memory stats store, optionally
// pre-seeded with fixture records.
func NewMemoryRepository(seed []Stat) *MemoryRepository {
	r := &MemoryRepository{
		stats: store.NewCollection(func(s Stat) string { return s.ID }),
	}
	for _, s := range seed {
		r.stats.Insert(s)
	}
	return r
}

// ListByCategory retrieves all stats in a category.
func (r *MemoryRepository) ListByCategory(_ context.Context, category string) ([]Stat, error) {
	return r.stats.List(func(s Stat) bool { return s.Category == category }), nil
}

// ReplaceCategory atomically swaps a category's stats for entries.
func (r *MemoryRepository) ReplaceCategory(_ context.Context, category string, entries []Stat) ([]Stat, error) {
	r.stats.Replace(func(s Stat) bool { return s.Category == category }, entries)
	return entries, nil
}
