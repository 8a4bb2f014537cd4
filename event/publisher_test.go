// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/campus-vote/models"
)

func TestLogAppendsInOrder(t *testing.T) {
	l := NewLog()
	ctx := context.Background()

	for _, kind := range []string{models.EventElectionOpened, models.EventVoteRecorded, models.EventElectionClosed} {
		if err := l.Publish(ctx, models.TransitionEvent{Kind: kind, At: time.Now()}); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
	}

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Kind != models.EventElectionOpened || entries[2].Kind != models.EventElectionClosed {
		t.Error("Entries must preserve append order")
	}

	// The returned slice is a copy
	entries[0].Kind = "mutated"
	if l.Entries()[0].Kind != models.EventElectionOpened {
		t.Error("Mutating the returned slice must not affect the log")
	}
}

func TestLogConcurrentPublish(t *testing.T) {
	l := NewLog()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Publish(context.Background(), models.TransitionEvent{Kind: models.EventVoteRecorded})
		}()
	}
	wg.Wait()

	if got := len(l.Entries()); got != 50 {
		t.Errorf("Expected 50 entries, got %d", got)
	}
}

type failingPublisher struct {
	err       error
	published int
	closed    bool
}

func (f *failingPublisher) Publish(context.Context, models.TransitionEvent) error {
	f.published++
	return f.err
}

func (f *failingPublisher) Close() error {
	f.closed = true
	return f.err
}

func TestMultiFansOut(t *testing.T) {
	log := NewLog()
	failing := &failingPublisher{err: errors.New("broker down")}
	healthy := &failingPublisher{}
	m := Multi{log, failing, healthy}

	err := m.Publish(context.Background(), models.TransitionEvent{Kind: models.EventVoteRecorded})
	if err == nil || err.Error() != "broker down" {
		t.Errorf("Expected the first error back, got %v", err)
	}

	// Every publisher still ran
	if len(log.Entries()) != 1 {
		t.Error("Expected the log to receive the event despite a failing sibling")
	}
	if healthy.published != 1 {
		t.Error("Expected publishers after the failure to still run")
	}

	if err := m.Close(); err == nil {
		t.Error("Expected close error propagated")
	}
	if !failing.closed || !healthy.closed {
		t.Error("Expected every publisher closed")
	}
}
