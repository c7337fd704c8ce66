package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/event"
)

func sampleEvent(id string) *event.Event {
	return &event.Event{
		ID:          id,
		Title:       "Demo Day",
		Description: "Final pitches from EVP A25",
		Date:        "2026-04-30",
		Time:        "14:00",
		CreatedBy:   "user-1",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestMemoryCreateAndList(t *testing.T) {
	repo := event.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), sampleEvent("e1")))
	require.NoError(t, repo.Create(context.Background(), sampleEvent("e2")))

	all, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e1", all[0].ID)
}

func TestMemoryGetByID_NotFound(t *testing.T) {
	repo := event.NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestAddAttendee_Idempotent(t *testing.T) {
	repo := event.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), sampleEvent("e1")))

	first, err := repo.AddAttendee(context.Background(), "e1", "user-9")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-9"}, first.Attendees)

	second, err := repo.AddAttendee(context.Background(), "e1", "user-9")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-9"}, second.Attendees, "repeat RSVP must not duplicate")
}

func TestAddAttendee_UnknownEvent(t *testing.T) {
	repo := event.NewMemoryRepository()

	_, err := repo.AddAttendee(context.Background(), "missing", "user-9")

	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestMemoryUpdate_PreservesAttendees(t *testing.T) {
	repo := event.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), sampleEvent("e1")))
	_, err := repo.AddAttendee(context.Background(), "e1", "user-9")
	require.NoError(t, err)

	patch := sampleEvent("ignored")
	patch.Title = "Demo Day (rescheduled)"
	patch.Date = "2026-05-07"

	updated, err := repo.Update(context.Background(), "e1", patch)

	require.NoError(t, err)
	assert.Equal(t, "e1", updated.ID)
	assert.Equal(t, "Demo Day (rescheduled)", updated.Title)
	assert.Equal(t, []string{"user-9"}, updated.Attendees)
}

func TestMemoryDelete(t *testing.T) {
	repo := event.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), sampleEvent("e1")))

	require.NoError(t, repo.Delete(context.Background(), "e1"))

	err := repo.Delete(context.Background(), "e1")
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}
