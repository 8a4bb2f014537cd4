// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package event

import (
	"context"
	"sync"

	"github.com/danielhkuo/campus-vote/models"
)

// Publisher receives committed audit events.
type Publisher interface {
	Publish(ctx context.Context, ev models.TransitionEvent) error
	Close() error
}

// Log is the in-process append-only audit sink. It always runs, with or
// without Kafka, so basic append-only recording survives a broker outage.
type Log struct {
	mu      sync.Mutex
	entries []models.TransitionEvent
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Publish(_ context.Context, ev models.TransitionEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, ev)
	return nil
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []models.TransitionEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.TransitionEvent, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Close() error { return nil }

// Multi fans events out to several publishers. The first error is
// returned; later publishers still run.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev models.TransitionEvent) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Close() error {
	var first error
	for _, p := range m {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
