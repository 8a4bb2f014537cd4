// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win; environment variables fill the gaps; secrets are
required.

# Settings

Required:

  - DATABASE_URL (-d): connection string
  - SESSION_SECRET (--session-secret): session token signing key
  - IDENTITY_SALT (--identity-salt): voter reference derivation salt
  - ADMIN_ID (--admin-id): admin login ID
  - ADMIN_PASSWORD_HASH (--admin-password-hash): bcrypt hash

Optional:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ELECTION_INITIAL (--initial-status): open or closed for a fresh
    deployment (default: closed)
  - KAFKA_BROKERS (--kafka-brokers): comma-separated brokers enabling the
    audit mirror
  - KAFKA_TOPIC (--kafka-topic): audit topic (default: election-audit)
*/
package cliparse
