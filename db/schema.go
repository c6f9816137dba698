// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect shared by SQLite and PostgreSQL
// so both drivers can run it unchanged.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Locales (contest participants)
CREATE TABLE IF NOT EXISTS locales (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    image_url TEXT NOT NULL DEFAULT '/logo.png',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    locale_id TEXT NOT NULL REFERENCES locales(id) ON DELETE CASCADE,
    voter_name TEXT NOT NULL,
    voter_contact TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (locale_id, voter_contact)
);

CREATE INDEX IF NOT EXISTS idx_votes_locale_id ON votes(locale_id);
CREATE INDEX IF NOT EXISTS idx_votes_locale_created ON votes(locale_id, created_at);
`
