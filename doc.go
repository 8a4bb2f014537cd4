// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the campus-vote API server.

Campus Vote is a single-election voting service: students authenticate
with an emailed verification code and cast exactly one vote among active
candidates; an administrator manages the candidate roster and opens or
closes the election.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3319 -d election.db -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite path
  - SESSION_SECRET (--session-secret): session token signing key
  - IDENTITY_SALT (--identity-salt): voter reference derivation salt
  - ADMIN_ID / ADMIN_PASSWORD_HASH: admin credentials (bcrypt hash)

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ELECTION_INITIAL: open or closed for a fresh deployment
  - KAFKA_BROKERS / KAFKA_TOPIC: audit event mirror

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: candidate registry, append-only vote ledger, open/close
    state machine behind one lock
  - tally: derived counts, rankings, CSV export
  - session: per-user navigation state machine
  - handlers: HTTP request handlers (auth, candidates, election, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, JSON helpers, role gates
  - auth: verification codes, voter identity, session tokens
  - models: request/response and domain types
  - db: schema creation and state snapshots at process boundaries
  - event: in-process audit log and optional Kafka mirror
  - metrics: Prometheus collectors for the voting path
  - cliparse: configuration parsing

State lives in memory while the process runs; db.LoadState runs at
startup and db.SaveState at shutdown.

See package documentation for each component.
*/
package main
