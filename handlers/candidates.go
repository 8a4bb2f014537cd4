// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

type CandidateHandler struct {
	app *election.App
}

func NewCandidateHandler(app *election.App) *CandidateHandler {
	return &CandidateHandler{app: app}
}

// List handles GET /candidates
// Returns active candidates only, in registration order. This is the
// ballot-choice view presented to voters.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.ListActive())
}

// ListAll handles GET /candidates/all (admin)
func (h *CandidateHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.ListAll())
}

// Add handles POST /candidates (admin)
func (h *CandidateHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.app.AddCandidate(req.Name, req.Department, req.Photo)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	slog.Info("candidate added", "candidate_id", c.ID, "name", c.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: c.ID,
	})
}

// Update handles PUT /candidates/{id} (admin)
// A rename relabels historical votes as well; ballots reference the
// candidate ID, not a name snapshot.
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	var req models.UpdateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.app.UpdateCandidate(id, req.Name, req.Department, req.Photo)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	slog.Info("candidate updated", "candidate_id", c.ID)

	middleware.JSONResponse(w, http.StatusOK, c)
}

// SetStatus handles POST /candidates/{id}/status (admin)
func (h *CandidateHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	var req models.SetCandidateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.app.SetCandidateStatus(id, req.Status); err != nil {
		respondDomainError(w, err)
		return
	}

	slog.Info("candidate status set", "candidate_id", id, "status", req.Status)

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /candidates/{id} (admin)
// Rejects with 409 when any ballot references the candidate; deactivation
// is the supported path for candidates with votes.
func (h *CandidateHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	if err := h.app.RemoveCandidate(id); err != nil {
		respondDomainError(w, err)
		return
	}

	slog.Info("candidate removed", "candidate_id", id)

	w.WriteHeader(http.StatusNoContent)
}
