// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/tally"
)

type ResultsHandler struct {
	app *election.App
}

func NewResultsHandler(app *election.App) *ResultsHandler {
	return &ResultsHandler{app: app}
}

// GetResults handles GET /results (admin)
// Aggregate counts only; individual ballots never leave the tally.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snap := h.app.Snapshot()

	resp := models.ResultsResponse{
		TotalVotes: tally.TotalVotes(snap),
		Rows:       tally.Report(snap),
	}
	if leader, ok := tally.Leader(snap); ok {
		resp.Leader = leader
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ExportCSV handles GET /results/export (admin)
func (h *ResultsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	snap := h.app.Snapshot()
	csv := tally.ExportCSV(snap)

	slog.Info("results exported", "total_votes", tally.TotalVotes(snap))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="election_results.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csv)); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}
