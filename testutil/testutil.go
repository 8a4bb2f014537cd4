// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/campus-vote/auth"
	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/models"
)

// Test secrets shared by handler and router tests.
const (
	TestSessionSecret = "test-session-secret"
	TestIdentitySalt  = "test-identity-salt"
	TestAdminID       = "admin@college.edu"
	TestAdminPassword = "correct horse battery staple"
)

// TestAdminHash is a bcrypt hash of TestAdminPassword.
var TestAdminHash = mustHash(TestAdminPassword)

func mustHash(password string) string {
	hash, err := auth.HashAdminPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3319,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		SessionSecret:     TestSessionSecret,
		IdentitySalt:      TestIdentitySalt,
		AdminID:           TestAdminID,
		AdminPasswordHash: TestAdminHash,
		InitialStatus:     models.ElectionClosed,
	}
}

// NewApp creates an isolated election instance in the given status.
func NewApp(t *testing.T, status string) *election.App {
	t.Helper()
	return election.New(election.Config{InitialStatus: status})
}

// AddCandidate registers a candidate and fails the test on error.
func AddCandidate(t *testing.T, app *election.App, name, department string) models.Candidate {
	t.Helper()
	c, err := app.AddCandidate(name, department, "")
	if err != nil {
		t.Fatalf("Failed to add candidate %s: %v", name, err)
	}
	return c
}

// NewTokens returns a token service using the shared test secret.
func NewTokens() *auth.TokenService {
	return auth.NewTokenService(TestSessionSecret, time.Hour)
}

// StudentToken issues a session token for an arbitrary voter reference.
func StudentToken(t *testing.T, voterRef string) string {
	t.Helper()
	token, err := NewTokens().IssueStudentToken(models.VoterIdentity{Ref: voterRef})
	if err != nil {
		t.Fatalf("Failed to issue student token: %v", err)
	}
	return token
}

// AdminToken issues an admin session token.
func AdminToken(t *testing.T) string {
	t.Helper()
	token, err := NewTokens().IssueAdminToken(TestAdminID)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
