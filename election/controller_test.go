// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/campus-vote/models"
)

func newOpenApp(t *testing.T) *App {
	t.Helper()
	return New(Config{InitialStatus: models.ElectionOpen})
}

func TestSubmitVoteScenario(t *testing.T) {
	app := newOpenApp(t)
	ctx := context.Background()

	a, err := app.AddCandidate("Rajesh Kumar", "Computer Science", "")
	if err != nil {
		t.Fatalf("AddCandidate failed: %v", err)
	}
	b, err := app.AddCandidate("Priya Sharma", "Electronics Engineering", "")
	if err != nil {
		t.Fatalf("AddCandidate failed: %v", err)
	}
	c, err := app.AddCandidate("Amit Patel", "Mechanical Engineering", "")
	if err != nil {
		t.Fatalf("AddCandidate failed: %v", err)
	}
	if err := app.SetCandidateStatus(c.ID, models.CandidateInactive); err != nil {
		t.Fatalf("SetCandidateStatus failed: %v", err)
	}

	// V1 votes for A while open
	token, _, err := app.SubmitVote(ctx, "v1", a.ID)
	if err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}
	if token == "" {
		t.Error("Expected a confirmation token")
	}
	if !app.HasVoted("v1") {
		t.Error("Expected v1 to have voted")
	}

	// V1 votes again, for B
	if _, _, err := app.SubmitVote(ctx, "v1", b.ID); !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("Expected ErrDuplicateVote, got %v", err)
	}

	// V2 votes for the inactive candidate
	if _, _, err := app.SubmitVote(ctx, "v2", c.ID); !errors.Is(err, ErrInactiveCandidate) {
		t.Errorf("Expected ErrInactiveCandidate, got %v", err)
	}

	// V2 votes for a candidate that does not exist
	if _, _, err := app.SubmitVote(ctx, "v2", "nope"); !errors.Is(err, ErrUnknownCandidate) {
		t.Errorf("Expected ErrUnknownCandidate, got %v", err)
	}

	// Admin closes; V3 tries to vote
	if err := app.Close(ctx, "admin"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, _, err := app.SubmitVote(ctx, "v3", a.ID); !errors.Is(err, ErrElectionClosed) {
		t.Errorf("Expected ErrElectionClosed, got %v", err)
	}

	// Exactly one ballot recorded, for A
	snap := app.Snapshot()
	if len(snap.Ballots) != 1 {
		t.Fatalf("Expected 1 ballot, got %d", len(snap.Ballots))
	}
	if snap.Ballots[0].CandidateID != a.ID || snap.Ballots[0].VoterRef != "v1" {
		t.Errorf("Unexpected ballot: %+v", snap.Ballots[0])
	}
}

func TestSubmitVoteClosedWritesNothing(t *testing.T) {
	app := New(Config{InitialStatus: models.ElectionClosed})
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")

	if _, _, err := app.SubmitVote(context.Background(), "v1", a.ID); !errors.Is(err, ErrElectionClosed) {
		t.Fatalf("Expected ErrElectionClosed, got %v", err)
	}
	if got := len(app.Snapshot().Ballots); got != 0 {
		t.Errorf("Expected no ballots, got %d", got)
	}
	if app.HasVoted("v1") {
		t.Error("Rejected submission must not mark the voter as having voted")
	}
}

func TestOpenCloseIdempotent(t *testing.T) {
	app := New(Config{InitialStatus: models.ElectionClosed})
	ctx := context.Background()

	if err := app.Open(ctx, "admin"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := app.Open(ctx, "admin"); err != nil {
		t.Fatalf("Second Open failed: %v", err)
	}
	if app.Status() != models.ElectionOpen {
		t.Errorf("Expected open, got %s", app.Status())
	}

	transitions := app.Transitions()
	if len(transitions) != 1 {
		t.Fatalf("Expected exactly 1 transition event, got %d", len(transitions))
	}
	if transitions[0].Kind != models.EventElectionOpened || transitions[0].Actor != "admin" {
		t.Errorf("Unexpected transition event: %+v", transitions[0])
	}

	if err := app.Close(ctx, "admin"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := app.Close(ctx, "admin"); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
	if got := len(app.Transitions()); got != 2 {
		t.Errorf("Expected 2 transition events after close, got %d", got)
	}
}

func TestRemoveCandidateWithBallotsConflicts(t *testing.T) {
	app := newOpenApp(t)
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")
	b, _ := app.AddCandidate("Priya Sharma", "Electronics Engineering", "")

	if _, _, err := app.SubmitVote(context.Background(), "v1", a.ID); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	if err := app.RemoveCandidate(a.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict removing a voted-for candidate, got %v", err)
	}
	if got := len(app.ListAll()); got != 2 {
		t.Errorf("Expected candidate to survive failed removal, got %d candidates", got)
	}

	// Unvoted candidates remove cleanly
	if err := app.RemoveCandidate(b.ID); err != nil {
		t.Errorf("Expected removal of unvoted candidate to succeed, got %v", err)
	}
	if err := app.RemoveCandidate("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestVoteEventsAppendToAuditLog(t *testing.T) {
	app := New(Config{InitialStatus: models.ElectionClosed})
	ctx := context.Background()
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")

	app.Open(ctx, "admin")
	if _, _, err := app.SubmitVote(ctx, "v1", a.ID); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}
	app.Close(ctx, "admin")

	events := app.Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 audit events, got %d", len(events))
	}
	kinds := []string{events[0].Kind, events[1].Kind, events[2].Kind}
	want := []string{models.EventElectionOpened, models.EventVoteRecorded, models.EventElectionClosed}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

// TestConcurrentSameVoter verifies the one true correctness-critical race:
// simultaneous submissions for one voter identity resolve to exactly one
// recorded ballot.
func TestConcurrentSameVoter(t *testing.T) {
	app := newOpenApp(t)
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")
	b, _ := app.AddCandidate("Priya Sharma", "Electronics Engineering", "")

	candidates := []string{a.ID, b.ID}
	var accepted, duplicate atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, err := app.SubmitVote(context.Background(), "same-voter", candidates[n%2])
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, ErrDuplicateVote):
				duplicate.Add(1)
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if accepted.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted submission, got %d", accepted.Load())
	}
	if duplicate.Load() != 19 {
		t.Errorf("Expected 19 duplicate rejections, got %d", duplicate.Load())
	}
	if got := len(app.Snapshot().Ballots); got != 1 {
		t.Errorf("Expected 1 ballot in ledger, got %d", got)
	}
}

// TestConcurrentDistinctVoters verifies independent voters all record.
func TestConcurrentDistinctVoters(t *testing.T) {
	app := newOpenApp(t)
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")

	const voters = 50
	var wg sync.WaitGroup
	var accepted atomic.Int32

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ref := "voter-" + string(rune('a'+n%26)) + string(rune('a'+n/26))
			if _, _, err := app.SubmitVote(context.Background(), ref, a.ID); err == nil {
				accepted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if int(accepted.Load()) != voters {
		t.Errorf("Expected %d accepted votes, got %d", voters, accepted.Load())
	}
	if got := len(app.Snapshot().Ballots); got != voters {
		t.Errorf("Expected %d ballots, got %d", voters, got)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	app := newOpenApp(t)
	a, _ := app.AddCandidate("Rajesh Kumar", "Computer Science", "")
	app.AddCandidate("Priya Sharma", "Electronics Engineering", "")
	app.SubmitVote(context.Background(), "v1", a.ID)
	app.Close(context.Background(), "admin")

	snap := app.Snapshot()
	restored := Restore(Config{InitialStatus: models.ElectionOpen}, snap)

	if restored.Status() != models.ElectionClosed {
		t.Errorf("Expected restored status closed, got %s", restored.Status())
	}
	if !restored.HasVoted("v1") {
		t.Error("Expected restored ledger to contain v1's ballot")
	}
	if got := len(restored.ListAll()); got != 2 {
		t.Errorf("Expected 2 restored candidates, got %d", got)
	}
	if got := len(restored.Events()); got != len(snap.Events) {
		t.Errorf("Expected %d restored events, got %d", len(snap.Events), got)
	}

	// Restored fresh states fall back to the configured initial status
	empty := Restore(Config{InitialStatus: models.ElectionOpen}, Snapshot{})
	if empty.Status() != models.ElectionOpen {
		t.Errorf("Expected empty restore to use initial status, got %s", empty.Status())
	}
}
