package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL,
		phone         TEXT,
		location      TEXT,
		college       TEXT,
		department    TEXT,
		bio           TEXT NOT NULL DEFAULT '',
		skills        TEXT[] NOT NULL DEFAULT '{}',
		achievements  TEXT[] NOT NULL DEFAULT '{}',
		joined_date   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email))`,
	`CREATE TABLE IF NOT EXISTS cohorts (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		program              TEXT NOT NULL,
		status               TEXT NOT NULL,
		start_date           TEXT NOT NULL,
		end_date             TEXT NOT NULL,
		participants         INTEGER NOT NULL DEFAULT 0,
		progress             INTEGER NOT NULL DEFAULT 0,
		milestones           TEXT[] NOT NULL DEFAULT '{}',
		completed_milestones INTEGER NOT NULL DEFAULT 0,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS campus_leads (
		id               TEXT PRIMARY KEY,
		user_id          TEXT,
		name             TEXT NOT NULL,
		college          TEXT NOT NULL,
		location         TEXT NOT NULL,
		status           TEXT NOT NULL,
		events_organized INTEGER NOT NULL DEFAULT 0,
		students_reached INTEGER NOT NULL DEFAULT 0,
		performance      TEXT NOT NULL,
		last_activity    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS channels (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		type              TEXT NOT NULL,
		unread            INTEGER NOT NULL DEFAULT 0,
		last_message      TEXT NOT NULL DEFAULT '',
		last_message_time TEXT NOT NULL DEFAULT '',
		online            BOOLEAN NOT NULL DEFAULT false,
		typing            BOOLEAN NOT NULL DEFAULT false,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id          TEXT PRIMARY KEY,
		channel_id  TEXT NOT NULL,
		sender      TEXT NOT NULL,
		role        TEXT NOT NULL,
		content     TEXT NOT NULL,
		stamp       TEXT NOT NULL,
		clock_time  TEXT NOT NULL,
		sent_date   TEXT NOT NULL,
		read        BOOLEAN NOT NULL DEFAULT false,
		starred     BOOLEAN NOT NULL DEFAULT false,
		file_name   TEXT,
		file_type   TEXT,
		file_url    TEXT,
		reply_to_id TEXT,
		seq         BIGSERIAL
	)`,
	`CREATE INDEX IF NOT EXISTS messages_channel_seq_idx ON messages (channel_id, seq)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL,
		time        TEXT NOT NULL DEFAULT '',
		cohort_id   TEXT,
		created_by  TEXT NOT NULL,
		attendees   TEXT[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stats (
		id       TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		label    TEXT NOT NULL,
		value    TEXT NOT NULL,
		icon     TEXT NOT NULL,
		color    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS stats_category_idx ON stats (category)`,
}

// EnsureSchema creates all tables if they do not exist and seeds default
// dashboard data into empty tables. Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	if err := seedStats(ctx, pool); err != nil {
		return err
	}
	if err := seedCohorts(ctx, pool); err != nil {
		return err
	}

	slog.Info("database schema ensured")
	return nil
}

func seedStats(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM stats`).Scan(&count); err != nil {
		return fmt.Errorf("counting stats: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := [][]any{
		{"c1", "cohort", "Total Participants", "105", "Users", "text-cyan-600"},
		{"c2", "cohort", "Active Cohorts", "3", "TrendingUp", "text-lime-600"},
		{"c3", "cohort", "Completion Rate", "78%", "Target", "text-purple-600"},
		{"c4", "cohort", "Success Stories", "24", "Award", "text-orange-600"},
		{"l1", "campus_lead", "Telangana", "15 leads", "MapPin", "text-cyan-600"},
		{"l2", "campus_lead", "Maharashtra", "12 leads", "MapPin", "text-lime-600"},
		{"l3", "campus_lead", "Tamil Nadu", "10 leads", "MapPin", "text-purple-600"},
		{"l4", "campus_lead", "Karnataka", "8 leads", "MapPin", "text-orange-600"},
	}
	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO stats (id, category, label, value, icon, color) VALUES ($1, $2, $3, $4, $5, $6)`,
			r...)
		if err != nil {
			return fmt.Errorf("seeding stats: %w", err)
		}
	}

	slog.Info("default stats seeded")
	return nil
}

func seedCohorts(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM cohorts`).Scan(&count); err != nil {
		return fmt.Errorf("counting cohorts: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := [][]any{
		{"1", "EVP A25", "Pre-Incubation", "Active", "2025-01-15", "2025-04-30", 45, 65,
			[]string{"Ideation", "Prototyping", "Market Research", "Pitch Preparation"}, 2},
		{"2", "EdAstra Batch 6", "Innovation Challenge", "Active", "2025-02-01", "2025-05-15", 32, 40,
			[]string{"Team Formation", "Problem Identification", "Solution Design", "Demo Day"}, 1},
		{"3", "Tentative Sprint", "Advanced Incubation", "Planning", "2025-03-01", "2025-06-30", 28, 15,
			[]string{"Onboarding", "Mentor Matching", "Development", "Launch"}, 0},
	}
	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO cohorts (id, name, program, status, start_date, end_date, participants, progress, milestones, completed_milestones)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			r...)
		if err != nil {
			return fmt.Errorf("seeding cohorts: %w", err)
		}
	}

	slog.Info("default cohorts seeded")
	return nil
}
