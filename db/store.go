// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/models"
)

// LoadState reads the persisted election snapshot. An empty database
// yields an empty snapshot; election.Restore then applies the configured
// initial status.
func LoadState(db *sql.DB) (election.Snapshot, error) {
	var snap election.Snapshot

	err := db.QueryRow(`SELECT status FROM election_state WHERE id = 1`).Scan(&snap.Status)
	if err != nil && err != sql.ErrNoRows {
		return election.Snapshot{}, fmt.Errorf("failed to load election status: %w", err)
	}

	rows, err := db.Query(`
		SELECT id, name, department, photo, status, created_at
		FROM candidate
		ORDER BY position
	`)
	if err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to load candidates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Department, &c.Photo, &c.Status, &c.CreatedAt); err != nil {
			return election.Snapshot{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		snap.Candidates = append(snap.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to read candidates: %w", err)
	}

	ballotRows, err := db.Query(`
		SELECT voter_ref, candidate_id, cast_at
		FROM ballot
		ORDER BY position
	`)
	if err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to load ballots: %w", err)
	}
	defer ballotRows.Close()

	for ballotRows.Next() {
		var b models.Ballot
		if err := ballotRows.Scan(&b.VoterRef, &b.CandidateID, &b.CastAt); err != nil {
			return election.Snapshot{}, fmt.Errorf("failed to scan ballot: %w", err)
		}
		snap.Ballots = append(snap.Ballots, b)
	}
	if err := ballotRows.Err(); err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to read ballots: %w", err)
	}

	eventRows, err := db.Query(`
		SELECT kind, actor, at
		FROM transition_event
		ORDER BY seq
	`)
	if err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to load events: %w", err)
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var ev models.TransitionEvent
		if err := eventRows.Scan(&ev.Kind, &ev.Actor, &ev.At); err != nil {
			return election.Snapshot{}, fmt.Errorf("failed to scan event: %w", err)
		}
		snap.Events = append(snap.Events, ev)
	}
	if err := eventRows.Err(); err != nil {
		return election.Snapshot{}, fmt.Errorf("failed to read events: %w", err)
	}

	return snap, nil
}

// SaveState writes the snapshot in one transaction. Ballots and audit
// events are insert-only; candidates and the election status are upserted.
// Candidates missing from the snapshot (hard-removed, so by invariant
// without ballots) are deleted.
func SaveState(db *sql.DB, snap election.Snapshot) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO election_state (id, status) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET status = excluded.status
	`, snap.Status)
	if err != nil {
		return fmt.Errorf("failed to save election status: %w", err)
	}

	current := make(map[string]bool, len(snap.Candidates))
	for i, c := range snap.Candidates {
		current[c.ID] = true
		_, err = tx.Exec(`
			INSERT INTO candidate (id, position, name, department, photo, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				position = excluded.position,
				name = excluded.name,
				department = excluded.department,
				photo = excluded.photo,
				status = excluded.status
		`, c.ID, i, c.Name, c.Department, c.Photo, c.Status, c.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save candidate %s: %w", c.ID, err)
		}
	}

	removed, err := staleCandidateIDs(tx, current)
	if err != nil {
		return err
	}
	for _, id := range removed {
		if _, err := tx.Exec(`DELETE FROM candidate WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete candidate %s: %w", id, err)
		}
	}

	for i, b := range snap.Ballots {
		_, err = tx.Exec(`
			INSERT INTO ballot (voter_ref, position, candidate_id, cast_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (voter_ref) DO NOTHING
		`, b.VoterRef, i, b.CandidateID, b.CastAt)
		if err != nil {
			return fmt.Errorf("failed to save ballot: %w", err)
		}
	}

	for i, ev := range snap.Events {
		_, err = tx.Exec(`
			INSERT INTO transition_event (seq, kind, actor, at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (seq) DO NOTHING
		`, i, ev.Kind, ev.Actor, ev.At)
		if err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}
	return nil
}

func staleCandidateIDs(tx *sql.Tx, current map[string]bool) ([]string, error) {
	rows, err := tx.Query(`SELECT id FROM candidate`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored candidates: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan candidate id: %w", err)
		}
		if !current[id] {
			stale = append(stale, id)
		}
	}
	return stale, rows.Err()
}
