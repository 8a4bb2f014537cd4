// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/campus-vote/auth"
	"github.com/danielhkuo/campus-vote/models"
)

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	adminToken, err := tokens.IssueAdminToken("returning-officer")
	if err != nil {
		t.Fatalf("IssueAdminToken failed: %v", err)
	}
	studentToken, err := tokens.IssueStudentToken(models.VoterIdentity{Ref: "v1"})
	if err != nil {
		t.Fatalf("IssueStudentToken failed: %v", err)
	}

	handler := RequireRole(tokens, models.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r)
		if !ok {
			t.Error("Expected claims in request context")
		} else if claims.Subject != "returning-officer" {
			t.Errorf("Unexpected subject: %s", claims.Subject)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		label      string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong role", "Bearer " + studentToken, http.StatusForbidden},
		{"admin token", "Bearer " + adminToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/election/open", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestClaimsFromWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/me", nil)
	if _, ok := ClaimsFrom(req); ok {
		t.Error("Expected no claims on a bare request")
	}
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORS(inner)

	req := httptest.NewRequest("GET", "/candidates", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected inner handler to run, got %d", w.Code)
	}

	// Preflight short-circuits
	pre := httptest.NewRequest("OPTIONS", "/candidates", nil)
	pw := httptest.NewRecorder()
	handler.ServeHTTP(pw, pre)
	if pw.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", pw.Code)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "You have already voted")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}
