// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"time"

	"github.com/danielhkuo/campus-vote/models"
)

// Ledger is the append-only record of cast votes, one per voter identity.
// It is the source of tally truth: counts are always derived from it and
// never stored elsewhere. Not safe for concurrent use on its own; App
// serializes all access so the HasVoted check and Record append form one
// atomic unit.
type Ledger struct {
	byVoter map[string]struct{}
	ballots []models.Ballot // cast order
}

func newLedger() *Ledger {
	return &Ledger{byVoter: make(map[string]struct{})}
}

// HasVoted reports whether a ballot exists for the voter identity.
func (l *Ledger) HasVoted(voterRef string) bool {
	_, ok := l.byVoter[voterRef]
	return ok
}

// Record appends a ballot. The single-ballot invariant is enforced here:
// a second ballot for the same voter fails with ErrDuplicateVote and
// leaves the ledger untouched. Candidate eligibility is the caller's
// responsibility, checked under the same lock.
func (l *Ledger) Record(voterRef, candidateID string, at time.Time) (models.Ballot, error) {
	if voterRef == "" {
		return models.Ballot{}, fmt.Errorf("%w: voter reference is required", ErrValidation)
	}
	if l.HasVoted(voterRef) {
		return models.Ballot{}, fmt.Errorf("%w: %s", ErrDuplicateVote, voterRef)
	}

	b := models.Ballot{VoterRef: voterRef, CandidateID: candidateID, CastAt: at}
	l.byVoter[voterRef] = struct{}{}
	l.ballots = append(l.ballots, b)
	return b, nil
}

// Ballots returns a snapshot of all ballots in cast order.
func (l *Ledger) Ballots() []models.Ballot {
	out := make([]models.Ballot, len(l.ballots))
	copy(out, l.ballots)
	return out
}

// CountFor returns the number of ballots referencing a candidate.
func (l *Ledger) CountFor(candidateID string) int {
	n := 0
	for _, b := range l.ballots {
		if b.CandidateID == candidateID {
			n++
		}
	}
	return n
}

// Len returns the total ballot count.
func (l *Ledger) Len() int {
	return len(l.ballots)
}

// restore appends a previously persisted ballot, preserving cast order.
func (l *Ledger) restore(b models.Ballot) {
	l.byVoter[b.VoterRef] = struct{}{}
	l.ballots = append(l.ballots, b)
}
