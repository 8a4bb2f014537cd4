// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/tally"
)

type ElectionHandler struct {
	app   *election.App
	votes *metrics.VoteMetrics
}

func NewElectionHandler(app *election.App, votes *metrics.VoteMetrics) *ElectionHandler {
	return &ElectionHandler{app: app, votes: votes}
}

// GetState handles GET /election
func (h *ElectionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionStateResponse{
		Status: h.app.Status(),
	})
}

// Open handles POST /election/open (admin)
func (h *ElectionHandler) Open(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r)
	if err := h.app.Open(r.Context(), claims.Subject); err != nil {
		respondDomainError(w, err)
		return
	}
	h.respondState(w)
}

// Close handles POST /election/close (admin)
func (h *ElectionHandler) Close(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r)
	if err := h.app.Close(r.Context(), claims.Subject); err != nil {
		respondDomainError(w, err)
		return
	}
	h.respondState(w)
}

func (h *ElectionHandler) respondState(w http.ResponseWriter) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionStateResponse{
		Status:      h.app.Status(),
		Transitions: h.app.Transitions(),
	})
}

// SubmitVote handles POST /votes (student)
func (h *ElectionHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.votes.SubmitTime.Observe(time.Since(start).Seconds())
	}()

	claims, ok := middleware.ClaimsFrom(r)
	if !ok || claims.VoterRef == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Voter session required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	token, recordedAt, err := h.app.SubmitVote(r.Context(), claims.VoterRef, req.CandidateID)
	if err != nil {
		h.countRejection(err)
		respondDomainError(w, err)
		return
	}

	h.votes.VotesAccepted.Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		ConfirmationToken: token,
		RecordedAt:        recordedAt,
	})
}

// GetMe handles GET /me (student)
// The has-voted flag is derived from ledger membership on every call.
func (h *ElectionHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok || claims.VoterRef == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Voter session required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StudentStateResponse{
		VoterRef:       claims.VoterRef,
		HasVoted:       h.app.HasVoted(claims.VoterRef),
		ElectionStatus: h.app.Status(),
	})
}

// GetSummary handles GET /election/summary (admin)
func (h *ElectionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	snap := h.app.Snapshot()

	active := 0
	for _, c := range snap.Candidates {
		if c.Status == models.CandidateActive {
			active++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminSummaryResponse{
		ElectionStatus:   snap.Status,
		TotalVotes:       tally.TotalVotes(snap),
		ActiveCandidates: active,
	})
}

func (h *ElectionHandler) countRejection(err error) {
	switch {
	case errors.Is(err, election.ErrElectionClosed):
		h.votes.VotesRejected.WithLabelValues(metrics.ReasonClosed).Inc()
	case errors.Is(err, election.ErrDuplicateVote):
		h.votes.VotesRejected.WithLabelValues(metrics.ReasonDuplicate).Inc()
	case errors.Is(err, election.ErrInactiveCandidate):
		h.votes.VotesRejected.WithLabelValues(metrics.ReasonInactive).Inc()
	case errors.Is(err, election.ErrUnknownCandidate):
		h.votes.VotesRejected.WithLabelValues(metrics.ReasonUnknown).Inc()
	default:
		slog.Warn("unclassified vote rejection", "error", err)
	}
}
