package campuslead

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on an in-process collection.
type MemoryRepository struct {
	leads *store.Collection[CampusLead]
}

// NewMemoryRepository creates an in-memory campus-lead store, optionally
// pre-seeded with fixture records.
func NewMemoryRepository(seed []CampusLead) *MemoryRepository {
	r := &MemoryRepository{
		leads: store.NewCollection(func(l CampusLead) string { return l.ID }),
	}
	for _, l := range seed {
		r.leads.Insert(l)
	}
	return r
}

// List returns all campus leads in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]CampusLead, error) {
	return r.leads.List(nil), nil
}

// GetByID retrieves a single campus lead by id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*CampusLead, error) {
	l, ok := r.leads.Get(id)
	if !ok {
		return nil, ErrLeadNotFound
	}
	return &l, nil
}

// Create inserts a new campus lead record.
func (r *MemoryRepository) Create(_ context.Context, l *CampusLead) error {
	r.leads.Insert(*l)
	return nil
}

// Update replaces the caller-writable fields of the campus lead with the given id.
func (r *MemoryRepository) Update(_ context.Context, id string, l *CampusLead) (*CampusLead, error) {
	updated, ok := r.leads.Update(id, func(existing CampusLead) CampusLead {
		existing.UserID = l.UserID
		existing.Name = l.Name
		existing.College = l.College
		existing.Location = l.Location
		existing.Status = l.Status
		existing.EventsOrganized = l.EventsOrganized
		existing.StudentsReached = l.StudentsReached
		existing.Performance = l.Performance
		existing.LastActivity = l.LastActivity
		return existing
	})
	if !ok {
		return nil, ErrLeadNotFound
	}
	return &updated, nil
}

// Delete removes a campus lead by id.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	if !r.leads.Delete(id) {
		return ErrLeadNotFound
	}
	return nil
}
