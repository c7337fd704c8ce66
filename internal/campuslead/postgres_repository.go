package campuslead

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const leadColumns = `id, user_id, name, college, location, status, events_organized,
       students_reached, performance, last_activity`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all campus leads.
func (r *PostgresRepository) List(ctx context.Context) ([]CampusLead, error) {
	query := `SELECT ` + leadColumns + ` FROM campus_leads ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, store.MarkUnavailable("campus_leads.list", fmt.Errorf("listing campus leads: %w", err))
	}
	defer rows.Close()

	leads := []CampusLead{}
	for rows.Next() {
		var l CampusLead
		if err := scanLead(rows, &l); err != nil {
			return nil, store.MarkUnavailable("campus_leads.list", fmt.Errorf("scanning campus lead row: %w", err))
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("campus_leads.list", fmt.Errorf("iterating campus lead rows: %w", err))
	}

	return leads, nil
}

// GetByID retrieves a single campus lead by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*CampusLead, error) {
	query := `SELECT ` + leadColumns + ` FROM campus_leads WHERE id = $1`

	var l CampusLead
	err := scanLead(r.pool.QueryRow(ctx, query, id), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, store.MarkUnavailable("campus_leads.getById", fmt.Errorf("querying campus lead: %w", err))
	}

	return &l, nil
}

// Create inserts a new campus lead record.
func (r *PostgresRepository) Create(ctx context.Context, l *CampusLead) error {
	query := `
		INSERT INTO campus_leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.UserID, l.Name, l.College, l.Location, l.Status,
		l.EventsOrganized, l.StudentsReached, l.Performance, l.LastActivity,
	)
	if err != nil {
		return store.MarkUnavailable("campus_leads.insert", fmt.Errorf("inserting campus lead: %w", err))
	}

	return nil
}

// Update replaces the caller-writable fields of the campus lead with the given id.
func (r *PostgresRepository) Update(ctx context.Context, id string, l *CampusLead) (*CampusLead, error) {
	query := `
		UPDATE campus_leads SET
			user_id = $2, name = $3, college = $4, location = $5, status = $6,
			events_organized = $7, students_reached = $8, performance = $9, last_activity = $10
		WHERE id = $1
		RETURNING ` + leadColumns

	var updated CampusLead
	err := scanLead(r.pool.QueryRow(ctx, query,
		id, l.UserID, l.Name, l.College, l.Location, l.Status,
		l.EventsOrganized, l.StudentsReached, l.Performance, l.LastActivity,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, store.MarkUnavailable("campus_leads.update", fmt.Errorf("updating campus lead: %w", err))
	}

	return &updated, nil
}

// Delete removes a campus lead by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM campus_leads WHERE id = $1`, id)
	if err != nil {
		return store.MarkUnavailable("campus_leads.delete", fmt.Errorf("deleting campus lead: %w", err))
	}

	if result.RowsAffected() == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func scanLead(row pgx.Row, l *CampusLead) error {
	return row.Scan(
		&l.ID, &l.UserID, &l.Name, &l.College, &l.Location, &l.Status,
		&l.EventsOrganized, &l.StudentsReached, &l.Performance, &l.LastActivity,
	)
}
