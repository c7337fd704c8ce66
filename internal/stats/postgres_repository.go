package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const statColumns = `id, category, label, value, icon, color`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// ListByCategory retrieves all stats in a category.
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Stat, error) {
	query := `SELECT ` + statColumns + ` FROM stats WHERE category = $1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, store.MarkUnavailable("stats.list", fmt.Errorf("listing stats: %w", err))
	}
	defer rows.Close()

	out := []Stat{}
	for rows.Next() {
		var s Stat
		if err := rows.Scan(&s.ID, &s.Category, &s.Label, &s.Value, &s.Icon, &s.Color); err != nil {
			return nil, store.MarkUnavailable("stats.list", fmt.Errorf("scanning stat row: %w", err))
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("stats.list", fmt.Errorf("iterating stat rows: %w", err))
	}

	return out, nil
}

// ReplaceCategory deletes a category's stats and inserts entries in their place.
func (r *PostgresRepository) ReplaceCategory(ctx context.Context, category string, entries []Stat) ([]Stat, error) {
	if _, err := r.pool.Exec(ctx, `DELETE FROM stats WHERE category = $1`, category); err != nil {
		return nil, store.MarkUnavailable("stats.replace", fmt.Errorf("clearing stats category: %w", err))
	}

	for _, s := range entries {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO stats (`+statColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, s.Category, s.Label, s.Value, s.Icon, s.Color,
		)
		if err != nil {
			return nil, store.MarkUnavailable("stats.replace", fmt.Errorf("inserting stat: %w", err))
		}
	}

	return entries, nil
}
