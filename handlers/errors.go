// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
)

// respondDomainError maps election sentinels to HTTP status codes and
// reports the rejection reason verbatim. Every domain rejection is
// deterministic, so nothing here invites a retry.
func respondDomainError(w http.ResponseWriter, err error) {
	middleware.ErrorResponse(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, election.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, election.ErrConflict),
		errors.Is(err, election.ErrDuplicateVote),
		errors.Is(err, election.ErrElectionClosed):
		return http.StatusConflict
	case errors.Is(err, election.ErrUnknownCandidate),
		errors.Is(err, election.ErrInactiveCandidate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
