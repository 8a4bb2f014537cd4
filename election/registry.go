// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/campus-vote/models"
)

// Registry is the authoritative set of candidates and their status.
// It is not safe for concurrent use on its own; App serializes all access.
type Registry struct {
	byID  map[string]*models.Candidate
	order []string // candidate IDs in registration order
}

func newRegistry() *Registry {
	return &Registry{byID: make(map[string]*models.Candidate)}
}

// Add registers a new candidate. New candidates start active; their vote
// count is implicit (derived by the tally, never stored here).
func (r *Registry) Add(name, department, photo string) (models.Candidate, error) {
	if name == "" {
		return models.Candidate{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if department == "" {
		return models.Candidate{}, fmt.Errorf("%w: department is required", ErrValidation)
	}
	if photo == "" {
		photo = models.DefaultCandidatePhoto
	}

	c := &models.Candidate{
		ID:         uuid.NewString(),
		Name:       name,
		Department: department,
		Photo:      photo,
		Status:     models.CandidateActive,
		CreatedAt:  time.Now(),
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return *c, nil
}

// Update edits a candidate's display fields. Ballots reference the
// candidate ID, so a rename relabels historical votes as well.
// An empty photo keeps the existing one.
func (r *Registry) Update(id, name, department, photo string) (models.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return models.Candidate{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if name == "" {
		return models.Candidate{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if department == "" {
		return models.Candidate{}, fmt.Errorf("%w: department is required", ErrValidation)
	}

	c.Name = name
	c.Department = department
	if photo != "" {
		c.Photo = photo
	}
	return *c, nil
}

// SetStatus activates or deactivates a candidate. Idempotent. Deactivation
// hides the candidate from future ballots but leaves cast ballots intact.
func (r *Registry) SetStatus(id, status string) error {
	if status != models.CandidateActive && status != models.CandidateInactive {
		return fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.CandidateActive, models.CandidateInactive)
	}
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.Status = status
	return nil
}

// Remove deletes a candidate record. The caller must first establish that
// no ballot references the candidate; removal here is unconditional.
func (r *Registry) Remove(id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.byID, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the candidate, if registered.
func (r *Registry) Get(id string) (models.Candidate, bool) {
	c, ok := r.byID[id]
	if !ok {
		return models.Candidate{}, false
	}
	return *c, true
}

// ListActive returns active candidates in registration order.
func (r *Registry) ListActive() []models.Candidate {
	out := []models.Candidate{}
	for _, id := range r.order {
		if c := r.byID[id]; c.Status == models.CandidateActive {
			out = append(out, *c)
		}
	}
	return out
}

// ListAll returns every candidate in registration order.
func (r *Registry) ListAll() []models.Candidate {
	out := []models.Candidate{}
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// restore re-registers a candidate preserving its ID and creation time.
func (r *Registry) restore(c models.Candidate) {
	cp := c
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
}
