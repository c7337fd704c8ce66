package event

import (
	"context"
	"errors"
)

// ErrEventNotFound is returned when an event record is not found.
var ErrEventNotFound = errors.New("event not found")

// Repository provides CRUD operations on events plus attendance
// registration. AddAttendee is idempotent per user.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, id string, e *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
	AddAttendee(ctx context.Context, eventID, userID string) (*Event, error)
}
