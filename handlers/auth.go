// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-vote/auth"
	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	tokens        *auth.TokenService
	cfg           cliparse.Config
}

func NewAuthHandler(authenticator *auth.Authenticator, tokens *auth.TokenService, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, tokens: tokens, cfg: cfg}
}

// RequestCode handles POST /auth/student/request-code
func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req models.RequestCodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	challengeID, err := h.authenticator.SendVerificationCode(req.Name, req.RollNumber, req.RegisterNumber, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to issue verification code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RequestCodeResponse{
		ChallengeID: challengeID,
		Message:     "Verification code sent to " + req.Email,
	})
}

// VerifyCode handles POST /auth/student/verify
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyCodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChallengeID == "" || req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "challenge_id and code are required")
		return
	}

	identity, err := h.authenticator.Verify(req.ChallengeID, req.Code)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.tokens.IssueStudentToken(identity)
	if err != nil {
		slog.Error("failed to issue student token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("student authenticated", "voter_ref", identity.Ref)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Token: token,
		Role:  models.RoleStudent,
	})
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AdminID != h.cfg.AdminID {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}
	if err := auth.CheckAdminPassword(h.cfg.AdminPasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	token, err := h.tokens.IssueAdminToken(req.AdminID)
	if err != nil {
		slog.Error("failed to issue admin token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("admin authenticated", "admin_id", req.AdminID)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Token: token,
		Role:  models.RoleAdmin,
	})
}
