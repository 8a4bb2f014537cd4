// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the election state machine: the candidate
registry, the append-only vote ledger, and the controller gating vote
submission.

# Components

  - Registry: authoritative candidate set with active/inactive status.
  - Ledger: append-only ballots, at most one per voter identity.
  - App: the controller. Owns Registry, Ledger, the open/closed status,
    and the audit event log behind a single mutex.

App is the only concurrency-safe entry point. Registry and Ledger are
plain data structures; tests may use them directly, but shared instances
must go through App.

# Single-Ballot Invariant

SubmitVote checks election status, candidate eligibility, and prior
voting, then appends the ballot, all while holding the one lock:

	token, at, err := app.SubmitVote(ctx, voterRef, candidateID)

Concurrent submissions for the same voter resolve to exactly one recorded
ballot; the rest fail with ErrDuplicateVote. A Close racing an in-flight
SubmitVote is decided by lock order: admitted votes record, later votes
reject with ErrElectionClosed. There is no partial outcome.

# Derived State

"Has voted" is ledger membership, never a stored flag. Vote counts are
derived by the tally package from Snapshot; no counter is kept here.

# Errors

All rejections are sentinel errors (ErrValidation, ErrNotFound,
ErrConflict, ErrDuplicateVote, ErrUnknownCandidate, ErrInactiveCandidate,
ErrElectionClosed), wrapped with context and matched with errors.Is.

# Audit

Every transition and vote appends a TransitionEvent to an in-memory log.
A configured Sink receives each event after commit, outside the lock.
Idempotent Open/Open or Close/Close calls are no-ops and log nothing.
*/
package election
