package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const eventColumns = `id, title, description, date, time, cohort_id, created_by, attendees, created_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all events ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, store.MarkUnavailable("events.list", fmt.Errorf("listing events: %w", err))
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, store.MarkUnavailable("events.list", fmt.Errorf("scanning event row: %w", err))
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("events.list", fmt.Errorf("iterating event rows: %w", err))
	}

	return events, nil
}

// GetByID retrieves a single event by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e Event
	err := scanEvent(r.pool.QueryRow(ctx, query, id), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, store.MarkUnavailable("events.getById", fmt.Errorf("querying event: %w", err))
	}

	return &e, nil
}

// Create inserts a new event record.
func (r *PostgresRepository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.CohortID,
		e.CreatedBy, e.Attendees, e.CreatedAt,
	)
	if err != nil {
		return store.MarkUnavailable("events.insert", fmt.Errorf("inserting event: %w", err))
	}

	return nil
}

// Update replaces the caller-writable fields of the event with the given id.
// The attendee list is preserved.
func (r *PostgresRepository) Update(ctx context.Context, id string, e *Event) (*Event, error) {
	query := `
		UPDATE events SET
			title = $2, description = $3, date = $4, time = $5, cohort_id = $6, created_by = $7
		WHERE id = $1
		RETURNING ` + eventColumns

	var updated Event
	err := scanEvent(r.pool.QueryRow(ctx, query,
		id, e.Title, e.Description, e.Date, e.Time, e.CohortID, e.CreatedBy,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, store.MarkUnavailable("events.update", fmt.Errorf("updating event: %w", err))
	}

	return &updated, nil
}

// Delete removes an event by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return store.MarkUnavailable("events.delete", fmt.Errorf("deleting event: %w", err))
	}

	if result.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// AddAttendee appends userID to the event's attendee list if absent.
func (r *PostgresRepository) AddAttendee(ctx context.Context, eventID, userID string) (*Event, error) {
	query := `
		UPDATE events SET attendees = CASE
			WHEN $2 = ANY(attendees) THEN attendees
			ELSE array_append(attendees, $2)
		END
		WHERE id = $1
		RETURNING ` + eventColumns

	var e Event
	err := scanEvent(r.pool.QueryRow(ctx, query, eventID, userID), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, store.MarkUnavailable("events.addAttendee", fmt.Errorf("adding attendee: %w", err))
	}

	return &e, nil
}

func scanEvent(row pgx.Row, e *Event) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.CohortID,
		&e.CreatedBy, &e.Attendees, &e.CreatedAt,
	)
}
