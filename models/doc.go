// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RequestCodeRequest: name, roll_number, register_number, email
  - VerifyCodeRequest: challenge_id, code
  - AdminLoginRequest: admin_id, password
  - AddCandidateRequest / UpdateCandidateRequest: name, department, photo
  - SetCandidateStatusRequest: status
  - SubmitVoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - RequestCodeResponse: challenge_id, message
  - SessionResponse: token, role
  - AddCandidateResponse: candidate_id
  - SubmitVoteResponse: confirmation_token, recorded_at
  - ElectionStateResponse: status, transitions
  - StudentStateResponse: voter_ref, has_voted, election_status
  - AdminSummaryResponse: election_status, total_votes, active_candidates
  - ResultsResponse: total_votes, leader, rows
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Candidate: roster entry with active/inactive status
  - Ballot: immutable voter-to-candidate record (mapping never serialized)
  - VoterIdentity: verified identity from the authenticator
  - TransitionEvent: one election open/close toggle for audit
  - TallyRow / ReportRow: derived aggregate results

# Constants

Candidate status:

	CandidateActive   = "active"
	CandidateInactive = "inactive"

Election status:

	ElectionOpen   = "open"
	ElectionClosed = "closed"

Roles:

	RoleStudent = "student"
	RoleAdmin   = "admin"
*/
package models
