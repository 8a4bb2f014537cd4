// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/campus-vote/auth"
	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/handlers"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

func NewRouter(app *election.App, cfg cliparse.Config, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	authenticator := auth.NewAuthenticator(cfg.IdentitySalt)
	tokens := auth.NewTokenService(cfg.SessionSecret, 12*time.Hour)
	voteMetrics := metrics.NewVoteMetrics(reg, "campus_vote")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authenticator, tokens, cfg)
	candidateHandler := handlers.NewCandidateHandler(app)
	electionHandler := handlers.NewElectionHandler(app, voteMetrics)
	resultsHandler := handlers.NewResultsHandler(app)

	student := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(tokens, models.RoleStudent, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(tokens, models.RoleAdmin, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Authentication (public)
	mux.HandleFunc("POST /auth/student/request-code", middleware.WithLogging(authHandler.RequestCode))
	mux.HandleFunc("POST /auth/student/verify", middleware.WithLogging(authHandler.VerifyCode))
	mux.HandleFunc("POST /auth/admin/login", middleware.WithLogging(authHandler.AdminLogin))

	// Election state (public read, admin transitions)
	mux.HandleFunc("GET /election", middleware.WithLogging(electionHandler.GetState))
	mux.HandleFunc("POST /election/open", admin(electionHandler.Open))
	mux.HandleFunc("POST /election/close", admin(electionHandler.Close))
	mux.HandleFunc("GET /election/summary", admin(electionHandler.GetSummary))

	// Candidates
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("GET /candidates/all", admin(candidateHandler.ListAll))
	mux.HandleFunc("POST /candidates", admin(candidateHandler.Add))
	mux.HandleFunc("PUT /candidates/{id}", admin(candidateHandler.Update))
	mux.HandleFunc("POST /candidates/{id}/status", admin(candidateHandler.SetStatus))
	mux.HandleFunc("DELETE /candidates/{id}", admin(candidateHandler.Remove))

	// Voting (student)
	mux.HandleFunc("POST /votes", student(electionHandler.SubmitVote))
	mux.HandleFunc("GET /me", student(electionHandler.GetMe))

	// Results (admin)
	mux.HandleFunc("GET /results", admin(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/export", admin(resultsHandler.ExportCSV))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campus-vote API v1"))
	})

	return mux
}
