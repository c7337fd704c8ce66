package event

import (
	"context"
	"slices"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on an in-process collection.
type MemoryRepository struct {
	events *store.Collection[Event]
}

// NewMemoryRepository creates an empty in-memory event store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events: store.NewCollection(func(e Event) string { return e.ID }),
	}
}

// List returns all events in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]Event, error) {
	return r.events.List(nil), nil
}

// GetByID retrieves a single event by id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Event, error) {
	e, ok := r.events.Get(id)
	if !ok {
		return nil, ErrEventNotFound
	}
	return &e, nil
}

// Create inserts a new event record.
func (r *MemoryRepository) Create(_ context.Context, e *Event) error {
	r.events.Insert(*e)
	return nil
}

// Update replaces the caller-writable fields of the event with the given id.
// The attendee list is preserved.
func (r *MemoryRepository) Update(_ context.Context, id string, e *Event) (*Event, error) {
	updated, ok := r.events.Update(id, func(existing Event) Event {
		existing.Title = e.Title
		existing.Description = e.Description
		existing.Date = e.Date
		existing.Time = e.Time
		existing.CohortID = e.CohortID
		existing.CreatedBy = e.CreatedBy
		return existing
	})
	if !ok {
		return nil, ErrEventNotFound
	}
	return &updated, nil
}

// Delete removes an event by id.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	if !r.events.Delete(id) {
		return ErrEventNotFound
	}
	return nil
}

// AddAttendee appends userID to the event's attendee list if absent.
func (r *MemoryRepository) AddAttendee(_ context.Context, eventID, userID string) (*Event, error) {
	updated, ok := r.events.Update(eventID, func(e Event) Event {
		if !slices.Contains(e.Attendees, userID) {
			e.Attendees = append(slices.Clone(e.Attendees), userID)
		}
		return e
	})
	if !ok {
		return nil, ErrEventNotFound
	}
	return &updated, nil
}
