// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/testutil"
)

func TestAddCandidate(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionClosed)
	h := NewCandidateHandler(app)

	req := testutil.MakeRequest("POST", "/candidates", models.AddCandidateRequest{
		Name:       "Rajesh Kumar",
		Department: "Computer Science",
	}, nil)
	w := httptest.NewRecorder()
	h.Add(w, req)
	testutil.AssertStatus(t, w, 201)

	var resp models.AddCandidateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.CandidateID == "" {
		t.Fatal("Expected a candidate ID")
	}

	c := app.ListAll()
	if len(c) != 1 || c[0].ID != resp.CandidateID {
		t.Error("Expected the candidate registered")
	}
	if c[0].Photo != models.DefaultCandidatePhoto {
		t.Errorf("Expected default photo, got %s", c[0].Photo)
	}
}

func TestAddCandidateValidation(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionClosed)
	h := NewCandidateHandler(app)

	req := testutil.MakeRequest("POST", "/candidates", models.AddCandidateRequest{
		Name: "Rajesh Kumar",
	}, nil)
	w := httptest.NewRecorder()
	h.Add(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestListCandidates(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionClosed)
	a := testutil.AddCandidate(t, app, "Rajesh Kumar", "Computer Science")
	testutil.AddCandidate(t, app, "Priya Sharma", "Electronics Engineering")
	if err := app.SetCandidateStatus(a.ID, models.CandidateInactive); err != nil {
		t.Fatalf("SetCandidateStatus failed: %v", err)
	}
	h := NewCandidateHandler(app)

	// Voter-facing list excludes inactive candidates
	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/candidates", nil, nil))
	testutil.AssertStatus(t, w, 200)
	var active []models.Candidate
	testutil.AssertJSON(t, w, &active)
	if len(active) != 1 || active[0].Name != "Priya Sharma" {
		t.Errorf("Expected only the active candidate, got %+v", active)
	}

	// Admin view includes everyone
	w = httptest.NewRecorder()
	h.ListAll(w, testutil.MakeRequest("GET", "/candidates/all", nil, nil))
	testutil.AssertStatus(t, w, 200)
	var all []models.Candidate
	testutil.AssertJSON(t, w, &all)
	if len(all) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(all))
	}
}

func TestUpdateCandidate(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionClosed)
	c := testutil.AddCandidate(t, app, "Rajesh Kumar", "Computer Science")
	h := NewCandidateHandler(app)

	req := testutil.MakeRequest("PUT", "/candidates/"+c.ID, models.UpdateCandidateRequest{
		Name:       "Rajesh K. Kumar",
		Department: "Mathematics",
	}, nil)
	req.SetPathValue("id", c.ID)
	w := httptest.NewRecorder()
	h.Update(w, req)
	testutil.AssertStatus(t, w, 200)

	var updated models.Candidate
	testutil.AssertJSON(t, w, &updated)
	if updated.Name != "Rajesh K. Kumar" || updated.Department != "Mathematics" {
		t.Errorf("Unexpected candidate: %+v", updated)
	}

	// Unknown candidate
	req = testutil.MakeRequest("PUT", "/candidates/missing", models.UpdateCandidateRequest{
		Name:       "X",
		Department: "Y",
	}, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	h.Update(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestSetCandidateStatus(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionClosed)
	c := testutil.AddCandidate(t, app, "Rajesh Kumar", "Computer Science")
	h := NewCandidateHandler(app)

	req := testutil.MakeRequest("POST", "/candidates/"+c.ID+"/status", models.SetCandidateStatusRequest{
		Status: models.CandidateInactive,
	}, nil)
	req.SetPathValue("id", c.ID)
	w := httptest.NewRecorder()
	h.SetStatus(w, req)
	testutil.AssertStatus(t, w, 204)

	got := app.ListAll()
	if got[0].Status != models.CandidateInactive {
		t.Errorf("Expected inactive, got %s", got[0].Status)
	}

	// Invalid status value
	req = testutil.MakeRequest("POST", "/candidates/"+c.ID+"/status", models.SetCandidateStatusRequest{
		Status: "suspended",
	}, nil)
	req.SetPathValue("id", c.ID)
	w = httptest.NewRecorder()
	h.SetStatus(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestRemoveCandidate(t *testing.T) {
	app := testutil.NewApp(t, models.ElectionOpen)
	a := testutil.AddCandidate(t, app, "Rajesh Kumar", "Computer Science")
	b := testutil.AddCandidate(t, app, "Priya Sharma", "Electronics Engineering")
	h := NewCandidateHandler(app)

	if _, _, err := app.SubmitVote(context.Background(), "v1", a.ID); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	// Voted-for candidate cannot be removed
	req := testutil.MakeRequest("DELETE", "/candidates/"+a.ID, nil, nil)
	req.SetPathValue("id", a.ID)
	w := httptest.NewRecorder()
	h.Remove(w, req)
	testutil.AssertStatus(t, w, 409)

	// Unvoted candidate removes cleanly
	req = testutil.MakeRequest("DELETE", "/candidates/"+b.ID, nil, nil)
	req.SetPathValue("id", b.ID)
	w = httptest.NewRecorder()
	h.Remove(w, req)
	testutil.AssertStatus(t, w, 204)

	if len(app.ListAll()) != 1 {
		t.Error("Expected one candidate left")
	}
}
