package event

import "time"

// Event is a calendar entry members can RSVP to. CohortID is an opaque
// reference; it is not validated against the cohort repository.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	CohortID    *string
	CreatedBy   string
	Attendees   []string
	CreatedAt   time.Time
}
