// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/campus-vote/models"
)

// Sink receives audit events after they are committed to the in-memory log.
// Publication happens outside the election lock, so a slow sink never
// blocks voting.
type Sink interface {
	Publish(ctx context.Context, ev models.TransitionEvent) error
}

// Config configures a fresh election instance.
type Config struct {
	// InitialStatus is the deployment policy for a brand-new election:
	// models.ElectionOpen or models.ElectionClosed.
	InitialStatus string

	// Sink, if set, receives every transition and vote event.
	Sink Sink
}

// Snapshot is a consistent copy of the full election state, used by the
// tally engine and by the persistent store at process boundaries.
type Snapshot struct {
	Status     string
	Candidates []models.Candidate // registration order
	Ballots    []models.Ballot    // cast order
	Events     []models.TransitionEvent
}

// App owns the shared election state: candidate registry, vote ledger,
// open/closed status, and the append-only event log. One mutex guards all
// of it, which makes the check-then-record vote path and the close-versus-
// submit race atomic by construction: whichever call acquires the lock
// first wins, cleanly.
type App struct {
	mu       sync.Mutex
	registry *Registry
	ledger   *Ledger
	status   string
	events   []models.TransitionEvent

	sink Sink
}

// New creates an election instance with an empty registry and ledger.
func New(cfg Config) *App {
	status := cfg.InitialStatus
	if status != models.ElectionOpen {
		status = models.ElectionClosed
	}
	return &App{
		registry: newRegistry(),
		ledger:   newLedger(),
		status:   status,
		sink:     cfg.Sink,
	}
}

// Restore creates an election instance from a persisted snapshot.
func Restore(cfg Config, snap Snapshot) *App {
	app := New(cfg)
	if snap.Status == models.ElectionOpen || snap.Status == models.ElectionClosed {
		app.status = snap.Status
	}
	for _, c := range snap.Candidates {
		app.registry.restore(c)
	}
	for _, b := range snap.Ballots {
		app.ledger.restore(b)
	}
	app.events = append(app.events, snap.Events...)
	return app
}

// Status returns the current election status.
func (a *App) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Open transitions Closed -> Open. Idempotent: opening an already-open
// election is a no-op and records no transition event.
func (a *App) Open(ctx context.Context, actor string) error {
	return a.transition(ctx, actor, models.ElectionOpen, models.EventElectionOpened)
}

// Close transitions Open -> Closed. Idempotent like Open. A vote that is
// waiting on the lock when Close acquires it will be rejected with
// ErrElectionClosed; a vote that acquired the lock first records.
func (a *App) Close(ctx context.Context, actor string) error {
	return a.transition(ctx, actor, models.ElectionClosed, models.EventElectionClosed)
}

func (a *App) transition(ctx context.Context, actor, target, kind string) error {
	a.mu.Lock()
	if a.status == target {
		a.mu.Unlock()
		slog.Info("election transition no-op", "actor", actor, "status", target)
		return nil
	}
	a.status = target
	ev := models.TransitionEvent{Kind: kind, Actor: actor, At: time.Now()}
	a.events = append(a.events, ev)
	a.mu.Unlock()

	slog.Info("election transition", "kind", kind, "actor", actor)
	a.publish(ctx, ev)
	return nil
}

// SubmitVote records one ballot for the voter. Preconditions, all checked
// under the same lock as the ledger append: election open, candidate
// registered and active, voter has not voted. Returns an opaque
// confirmation token on success.
func (a *App) SubmitVote(ctx context.Context, voterRef, candidateID string) (string, time.Time, error) {
	a.mu.Lock()
	if a.status != models.ElectionOpen {
		a.mu.Unlock()
		return "", time.Time{}, fmt.Errorf("%w: vote not accepted", ErrElectionClosed)
	}
	c, ok := a.registry.Get(candidateID)
	if !ok {
		a.mu.Unlock()
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID)
	}
	if c.Status != models.CandidateActive {
		a.mu.Unlock()
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrInactiveCandidate, candidateID)
	}

	b, err := a.ledger.Record(voterRef, candidateID, time.Now())
	if err != nil {
		a.mu.Unlock()
		return "", time.Time{}, err
	}

	ev := models.TransitionEvent{Kind: models.EventVoteRecorded, Actor: voterRef, At: b.CastAt}
	a.events = append(a.events, ev)
	a.mu.Unlock()

	slog.Info("vote recorded", "candidate_id", candidateID)
	a.publish(ctx, ev)
	return uuid.NewString(), b.CastAt, nil
}

// HasVoted reports whether the voter identity already has a ballot. The
// flag is derived from ledger membership; it is never stored on a voter
// record.
func (a *App) HasVoted(voterRef string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.HasVoted(voterRef)
}

// Candidate registry operations, serialized with voting.

func (a *App) AddCandidate(name, department, photo string) (models.Candidate, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.Add(name, department, photo)
}

func (a *App) UpdateCandidate(id, name, department, photo string) (models.Candidate, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.Update(id, name, department, photo)
}

func (a *App) SetCandidateStatus(id, status string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.SetStatus(id, status)
}

// RemoveCandidate deletes a candidate record, unless any ballot references
// it. Candidates with recorded votes can only be deactivated; removing
// them would corrupt the tally with dangling references.
func (a *App) RemoveCandidate(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.registry.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if a.ledger.CountFor(id) > 0 {
		return fmt.Errorf("%w: candidate %s has recorded ballots", ErrConflict, id)
	}
	return a.registry.Remove(id)
}

func (a *App) ListActive() []models.Candidate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.ListActive()
}

func (a *App) ListAll() []models.Candidate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.ListAll()
}

// Transitions returns the open/close toggles from the event log, in order.
func (a *App) Transitions() []models.TransitionEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := []models.TransitionEvent{}
	for _, ev := range a.events {
		if ev.Kind == models.EventElectionOpened || ev.Kind == models.EventElectionClosed {
			out = append(out, ev)
		}
	}
	return out
}

// Events returns the full audit log in append order.
func (a *App) Events() []models.TransitionEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.TransitionEvent, len(a.events))
	copy(out, a.events)
	return out
}

// Snapshot copies the full state under the lock. Tally computation and
// persistence both work from this copy, never from live state.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := Snapshot{
		Status:     a.status,
		Candidates: a.registry.ListAll(),
		Ballots:    a.ledger.Ballots(),
		Events:     make([]models.TransitionEvent, len(a.events)),
	}
	copy(snap.Events, a.events)
	return snap
}

func (a *App) publish(ctx context.Context, ev models.TransitionEvent) {
	if a.sink == nil {
		return
	}
	if err := a.sink.Publish(ctx, ev); err != nil {
		slog.Warn("audit publish failed", "kind", ev.Kind, "error", err)
	}
}
