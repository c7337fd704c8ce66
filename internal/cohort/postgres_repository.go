package cohort

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const cohortColumns = `id, name, program, status, start_date, end_date, participants, progress,
       milestones, completed_milestones, created_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all cohorts ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]Cohort, error) {
	query := `SELECT ` + cohortColumns + ` FROM cohorts ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, store.MarkUnavailable("cohorts.list", fmt.Errorf("listing cohorts: %w", err))
	}
	defer rows.Close()

	cohorts := []Cohort{}
	for rows.Next() {
		var c Cohort
		if err := scanCohort(rows, &c); err != nil {
			return nil, store.MarkUnavailable("cohorts.list", fmt.Errorf("scanning cohort row: %w", err))
		}
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("cohorts.list", fmt.Errorf("iterating cohort rows: %w", err))
	}

	return cohorts, nil
}

// GetByID retrieves a single cohort by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Cohort, error) {
	query := `SELECT ` + cohortColumns + ` FROM cohorts WHERE id = $1`

	var c Cohort
	err := scanCohort(r.pool.QueryRow(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCohortNotFound
		}
		return nil, store.MarkUnavailable("cohorts.getById", fmt.Errorf("querying cohort: %w", err))
	}

	return &c, nil
}

// Create inserts a new cohort record.
func (r *PostgresRepository) Create(ctx context.Context, c *Cohort) error {
	query := `
		INSERT INTO cohorts (` + cohortColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Program, c.Status, c.StartDate, c.EndDate,
		c.Participants, c.Progress, c.Milestones, c.CompletedMilestones, c.CreatedAt,
	)
	if err != nil {
		return store.MarkUnavailable("cohorts.insert", fmt.Errorf("inserting cohort: %w", err))
	}

	return nil
}

// Update replaces the caller-writable fields of the cohort with the given id.
func (r *PostgresRepository) Update(ctx context.Context, id string, c *Cohort) (*Cohort, error) {
	query := `
		UPDATE cohorts SET
			name = $2, program = $3, status = $4, start_date = $5, end_date = $6,
			participants = $7, progress = $8, milestones = $9, completed_milestones = $10
		WHERE id = $1
		RETURNING ` + cohortColumns

	var updated Cohort
	err := scanCohort(r.pool.QueryRow(ctx, query,
		id, c.Name, c.Program, c.Status, c.StartDate, c.EndDate,
		c.Participants, c.Progress, c.Milestones, c.CompletedMilestones,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCohortNotFound
		}
		return nil, store.MarkUnavailable("cohorts.update", fmt.Errorf("updating cohort: %w", err))
	}

	return &updated, nil
}

// Delete removes a cohort by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cohorts WHERE id = $1`, id)
	if err != nil {
		return store.MarkUnavailable("cohorts.delete", fmt.Errorf("deleting cohort: %w", err))
	}

	if result.RowsAffected() == 0 {
		return ErrCohortNotFound
	}

	return nil
}

func scanCohort(row pgx.Row, c *Cohort) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Program, &c.Status, &c.StartDate, &c.EndDate,
		&c.Participants, &c.Progress, &c.Milestones, &c.CompletedMilestones, &c.CreatedAt,
	)
}
