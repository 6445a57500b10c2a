package seeder

import (
	"context"
	"fmt"

	"gigconnect/internal/database"
)

// Schema statements are idempotent so every process instance can run them at
// startup against a shared database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('client', 'freelancer', 'both')),
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,

	`CREATE TABLE IF NOT EXISTS freelancer_profiles (
		id               UUID PRIMARY KEY,
		user_id          UUID NOT NULL REFERENCES users(id),
		title            TEXT,
		hourly_rate      NUMERIC(10,2),
		bio              TEXT,
		experience_years INT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS freelancer_profiles_user_key ON freelancer_profiles (user_id)`,

	`CREATE TABLE IF NOT EXISTS gigs (
		id              UUID PRIMARY KEY,
		client_id       UUID NOT NULL REFERENCES users(id),
		title           TEXT NOT NULL,
		description     TEXT NOT NULL,
		category        TEXT,
		budget_min      NUMERIC(10,2),
		budget_max      NUMERIC(10,2),
		budget_type     TEXT,
		latitude        DOUBLE PRECISION,
		longitude       DOUBLE PRECISION,
		is_remote       BOOLEAN NOT NULL DEFAULT FALSE,
		deadline        TIMESTAMPTZ,
		required_skills JSONB NOT NULL DEFAULT '[]'::jsonb,
		status          TEXT NOT NULL DEFAULT 'open',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// The unique index makes the duplicate-application check authoritative
	// even when two requests race past the pre-check.
	`CREATE TABLE IF NOT EXISTS gig_applications (
		id            UUID PRIMARY KEY,
		gig_id        UUID NOT NULL REFERENCES gigs(id),
		freelancer_id UUID NOT NULL REFERENCES users(id),
		cover_letter  TEXT,
		proposed_rate NUMERIC(10,2),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS gig_applications_gig_freelancer_key
		ON gig_applications (gig_id, freelancer_id)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id          UUID PRIMARY KEY,
		sender_id   UUID NOT NULL REFERENCES users(id),
		receiver_id UUID NOT NULL REFERENCES users(id),
		content     TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS messages_pair_idx
		ON messages (sender_id, receiver_id, created_at)`,
}

func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
