// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/campus-vote/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownChallenge   = errors.New("unknown or expired challenge")
	ErrCodeMismatch       = errors.New("verification code does not match")
)

// challengeTTL bounds how long an issued verification code stays valid.
const challengeTTL = 10 * time.Minute

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DeriveVoterRef maps a (roll number, register number) pair to an opaque
// voter reference. HMAC keeps the mapping deterministic per deployment
// without storing the raw pair next to ballots.
func DeriveVoterRef(rollNumber, registerNumber, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(rollNumber + ":" + registerNumber))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}

type challenge struct {
	identity  models.VoterIdentity
	code      string
	expiresAt time.Time
}

// Authenticator issues and verifies email verification codes for student
// login. Code delivery is out of scope: the code is logged, standing in
// for the mail capability.
type Authenticator struct {
	salt string

	mu         sync.Mutex
	challenges map[string]challenge
}

func NewAuthenticator(identitySalt string) *Authenticator {
	return &Authenticator{
		salt:       identitySalt,
		challenges: make(map[string]challenge),
	}
}

// SendVerificationCode validates the student's details and issues an
// opaque challenge. The caller exchanges the challenge ID plus the
// emailed code for a verified identity.
func (a *Authenticator) SendVerificationCode(name, rollNumber, registerNumber, email string) (string, error) {
	if name == "" || rollNumber == "" || registerNumber == "" {
		return "", fmt.Errorf("%w: name, roll number and register number are required", ErrInvalidCredentials)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: a valid email is required", ErrInvalidCredentials)
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	a.mu.Lock()
	a.challenges[id] = challenge{
		identity: models.VoterIdentity{
			Ref:        DeriveVoterRef(rollNumber, registerNumber, a.salt),
			RollNumber: rollNumber,
			Email:      email,
		},
		code:      code,
		expiresAt: time.Now().Add(challengeTTL),
	}
	a.mu.Unlock()

	// Stand-in for the mail sender.
	slog.Info("verification code issued", "challenge_id", id, "code", code)

	return id, nil
}

// Verify exchanges a challenge and code for the verified voter identity.
// Challenges are single-use; success and mismatch both consume attempts
// against the same stored code until it expires.
func (a *Authenticator) Verify(challengeID, code string) (models.VoterIdentity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, ok := a.challenges[challengeID]
	if !ok || time.Now().After(ch.expiresAt) {
		delete(a.challenges, challengeID)
		return models.VoterIdentity{}, ErrUnknownChallenge
	}
	if subtleEqual(ch.code, code) {
		delete(a.challenges, challengeID)
		return ch.identity, nil
	}
	return models.VoterIdentity{}, ErrCodeMismatch
}

// CheckAdminPassword compares a configured bcrypt hash with the supplied
// password.
func CheckAdminPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("%w: password check failed", ErrInvalidCredentials)
	}
	return nil
}

// HashAdminPassword produces a bcrypt hash for configuration and tests.
func HashAdminPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// generateCode returns a 6-digit verification code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func subtleEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
