// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The statements are
// kept to the dialect subset shared by PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates (position preserves registration order)
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    department TEXT NOT NULL,
    photo TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('active', 'inactive')),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);

-- Ballots: one per voter, never updated or deleted
CREATE TABLE IF NOT EXISTS ballot (
    voter_ref TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    candidate_id TEXT NOT NULL REFERENCES candidate(id),
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_candidate_id ON ballot(candidate_id);

-- Election status, single row
CREATE TABLE IF NOT EXISTS election_state (
    id INTEGER PRIMARY KEY,
    status TEXT NOT NULL CHECK (status IN ('open', 'closed'))
);

-- Audit log, insert-only
CREATE TABLE IF NOT EXISTS transition_event (
    seq INTEGER PRIMARY KEY,
    kind TEXT NOT NULL,
    actor TEXT NOT NULL,
    at TIMESTAMP NOT NULL
);
`
