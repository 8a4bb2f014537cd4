// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface.

Handlers are grouped by concern, each a struct with injected
dependencies:

  - AuthHandler: student request-code/verify flow, admin login
  - CandidateHandler: roster management and listing
  - ElectionHandler: open/close, vote submission, student/admin state
  - ResultsHandler: tally rows and CSV export

# Error Mapping

Domain sentinels map to status codes in one place (respondDomainError):

	ErrValidation                         400
	ErrNotFound                           404
	ErrConflict / ErrDuplicateVote /
	ErrElectionClosed                     409
	ErrUnknownCandidate /
	ErrInactiveCandidate                  422

Rejection reasons are reported verbatim; none of them are retryable.
*/
package handlers
