package cohort

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on an in-process collection.
type MemoryRepository struct {
	cohorts *store.Collection[Cohort]
}

// NewMemoryRepository creates an in-memory cohort store, optionally
// pre-seeded with fixture records.
func NewMemoryRepository(seed []Cohort) *MemoryRepository {
	r := &MemoryRepository{
		cohorts: store.NewCollection(func(c Cohort) string { return c.ID }),
	}
	for _, c := range seed {
		r.cohorts.Insert(c)
	}
	return r
}

// List returns all cohorts in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]Cohort, error) {
	return r.cohorts.List(nil), nil
}

// GetByID retrieves a single cohort by id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Cohort, error) {
	c, ok := r.cohorts.Get(id)
	if !ok {
		return nil, ErrCohortNotFound
	}
	return &c, nil
}

// Create inserts a new cohort record.
func (r *MemoryRepository) Create(_ context.Context, c *Cohort) error {
	r.cohorts.Insert(*c)
	return nil
}

// Update replaces the caller-writable fields of the cohort with the given id.
func (r *MemoryRepository) Update(_ context.Context, id string, c *Cohort) (*Cohort, error) {
	updated, ok := r.cohorts.Update(id, func(existing Cohort) Cohort {
		existing.Name = c.Name
		existing.Program = c.Program
		existing.Status = c.Status
		existing.StartDate = c.StartDate
		existing.EndDate = c.EndDate
		existing.Participants = c.Participants
		existing.Progress = c.Progress
		existing.Milestones = c.Milestones
		existing.CompletedMilestones = c.CompletedMilestones
		return existing
	})
	if !ok {
		return nil, ErrCohortNotFound
	}
	return &updated, nil
}

// Delete removes a cohort by id.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	if !r.cohorts.Delete(id) {
		return ErrCohortNotFound
	}
	return nil
}
