// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Candidate status constants
const (
	CandidateActive   = "active"
	CandidateInactive = "inactive"
)

// Election status constants
const (
	ElectionOpen   = "open"
	ElectionClosed = "closed"
)

// Actor roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Audit event kinds
const (
	EventElectionOpened = "election_opened"
	EventElectionClosed = "election_closed"
	EventVoteRecorded   = "vote_recorded"
)

// DefaultCandidatePhoto is used when a candidate is created without a photo reference.
const DefaultCandidatePhoto = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400"

// Request types

type RequestCodeRequest struct {
	Name           string `json:"name"`
	RollNumber     string `json:"roll_number"`
	RegisterNumber string `json:"register_number"`
	Email          string `json:"email"`
}

type VerifyCodeRequest struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
}

type AdminLoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

type AddCandidateRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Photo      string `json:"photo"`
}

type UpdateCandidateRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Photo      string `json:"photo"`
}

type SetCandidateStatusRequest struct {
	Status string `json:"status"`
}

type SubmitVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type RequestCodeResponse struct {
	ChallengeID string `json:"challenge_id"`
	Message     string `json:"message"`
}

type SessionResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AddCandidateResponse struct {
	CandidateID string `json:"candidate_id"`
}

type SubmitVoteResponse struct {
	ConfirmationToken string    `json:"confirmation_token"`
	RecordedAt        time.Time `json:"recorded_at"`
}

type ElectionStateResponse struct {
	Status      string            `json:"status"`
	Transitions []TransitionEvent `json:"transitions,omitempty"`
}

type StudentStateResponse struct {
	VoterRef       string `json:"voter_ref"`
	HasVoted       bool   `json:"has_voted"`
	ElectionStatus string `json:"election_status"`
}

type AdminSummaryResponse struct {
	ElectionStatus   string `json:"election_status"`
	TotalVotes       int    `json:"total_votes"`
	ActiveCandidates int    `json:"active_candidates"`
}

type ResultsResponse struct {
	TotalVotes int         `json:"total_votes"`
	Leader     string      `json:"leader,omitempty"`
	Rows       []ReportRow `json:"rows"`
}

// Domain types

type Candidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Photo      string    `json:"photo"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ballot links one voter to one candidate choice. Immutable once recorded.
// The voter-to-candidate mapping never leaves the aggregate computation,
// so both references are excluded from JSON.
type Ballot struct {
	VoterRef    string    `json:"-"`
	CandidateID string    `json:"-"`
	CastAt      time.Time `json:"cast_at"`
}

// VoterIdentity is the verified identity produced by the authenticator.
// Ref is an opaque HMAC-derived reference to the (roll, register) pair.
type VoterIdentity struct {
	Ref        string `json:"ref"`
	RollNumber string `json:"roll_number"`
	Email      string `json:"email"`
}

// TransitionEvent records one election open/close toggle for audit.
type TransitionEvent struct {
	Kind  string    `json:"kind"`
	Actor string    `json:"actor"`
	At    time.Time `json:"at"`
}

// TallyRow is one aggregate line of the tally.
type TallyRow struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Votes       int    `json:"votes"`
}

// ReportRow is one exported results line with the vote share attached.
type ReportRow struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
