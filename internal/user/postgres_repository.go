package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const userColumns = `id, email, password_hash, name, role, phone, location, college, department,
       bio, skills, achievements, joined_date`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new user record.
func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role,
		u.Phone, u.Location, u.College, u.Department,
		u.Bio, u.Skills, u.Achievements, u.JoinedDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return store.MarkUnavailable("users.insert", fmt.Errorf("inserting user: %w", err))
	}

	return nil
}

// GetByID retrieves a single user by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryOne(ctx, "users.getById", query, id)
}

// GetByEmail retrieves a single user by email, case-insensitively.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.queryOne(ctx, "users.getByEmail", query, email)
}

// UpdateProfile applies the caller-writable fields of upd and returns the
// updated record.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error) {
	query := `
		UPDATE users SET
			name         = COALESCE($2, name),
			phone        = COALESCE($3, phone),
			location     = COALESCE($4, location),
			college      = COALESCE($5, college),
			department   = COALESCE($6, department),
			bio          = COALESCE($7, bio),
			skills       = COALESCE($8, skills),
			achievements = COALESCE($9, achievements)
		WHERE id = $1
		RETURNING ` + userColumns

	var skills, achievements *[]string
	if upd.Skills != nil {
		skills = &upd.Skills
	}
	if upd.Achievements != nil {
		achievements = &upd.Achievements
	}

	row := r.pool.QueryRow(ctx, query, id,
		upd.Name, upd.Phone, upd.Location, upd.College, upd.Department, upd.Bio,
		skills, achievements,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, store.MarkUnavailable("users.updateProfile", fmt.Errorf("updating profile: %w", err))
	}

	return u, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, op, query string, arg any) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, store.MarkUnavailable(op, fmt.Errorf("querying user: %w", err))
	}
	return u, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.Phone, &u.Location, &u.College, &u.Department,
		&u.Bio, &u.Skills, &u.Achievements, &u.JoinedDate,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
