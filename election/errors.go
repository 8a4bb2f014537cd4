// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Domain errors. Every rejection in this package is deterministic: callers
// surface them verbatim and never retry.
var (
	// ErrValidation indicates malformed input, such as an empty candidate name.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced candidate does not exist.
	ErrNotFound = errors.New("candidate not found")

	// ErrConflict indicates the operation would violate an invariant,
	// such as removing a candidate with recorded ballots.
	ErrConflict = errors.New("operation conflicts with recorded ballots")

	// ErrDuplicateVote indicates the voter has already cast a ballot.
	ErrDuplicateVote = errors.New("voter has already cast a ballot")

	// ErrUnknownCandidate indicates the ballot references a candidate
	// that is not in the registry.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrInactiveCandidate indicates the ballot references a candidate
	// that is currently deactivated.
	ErrInactiveCandidate = errors.New("candidate is not active")

	// ErrElectionClosed indicates a vote was submitted while the election
	// is closed.
	ErrElectionClosed = errors.New("election is closed")
)
