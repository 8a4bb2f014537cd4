// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and election state snapshots.

The election core runs in memory; this package touches the database only
at process boundaries. LoadState runs once at startup, SaveState on
shutdown. No operation persists mid-request.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The SQL sticks to the
subset PostgreSQL and SQLite share, so either driver works:

	sql.Open("postgres", url)  // github.com/lib/pq
	sql.Open("sqlite", url)    // modernc.org/sqlite

# Tables

  - candidate: roster with registration order (position) and status
  - ballot: one row per voter, insert-only
  - election_state: single-row open/closed status
  - transition_event: insert-only audit log

# Snapshot Semantics

SaveState upserts candidates and status, deletes candidates removed from
the registry (by invariant those have no ballots), and appends ballots
and events with ON CONFLICT DO NOTHING, so history rows are never
rewritten.
*/
package db
