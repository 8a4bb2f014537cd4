// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/campus-vote/models"
)

var ErrInvalidTransition = errors.New("invalid navigation transition")

// State is one screen of the user flow.
type State string

const (
	Landing          State = "landing"
	StudentLogin     State = "student_login"
	AdminLogin       State = "admin_login"
	StudentDashboard State = "student_dashboard"
	Voting           State = "voting"
	VoteSuccess      State = "vote_success"
	AdminDashboard   State = "admin_dashboard"
	ManageCandidates State = "manage_candidates"
	Results          State = "results"
)

// Event is a user action driving navigation.
type Event string

const (
	ChooseStudentLogin Event = "choose_student_login"
	ChooseAdminLogin   Event = "choose_admin_login"
	Back               Event = "back"
	LoginSucceeded     Event = "login_succeeded"
	VoteNow            Event = "vote_now"
	VoteAccepted       Event = "vote_accepted"
	VoteRejected       Event = "vote_rejected"
	ManageRoster       Event = "manage_roster"
	ViewResults        Event = "view_results"
	Logout             Event = "logout"
)

type transitionKey struct {
	from State
	on   Event
}

type transitionRule struct {
	to   State
	role string // required role; empty means any
}

// transitions is the full (state, event) table. Navigation is a pure
// lookup here; no screen decides where to go next.
var transitions = map[transitionKey]transitionRule{
	{Landing, ChooseStudentLogin}: {to: StudentLogin},
	{Landing, ChooseAdminLogin}:   {to: AdminLogin},

	{StudentLogin, LoginSucceeded}: {to: StudentDashboard, role: models.RoleStudent},
	{StudentLogin, Back}:           {to: Landing},

	{AdminLogin, LoginSucceeded}: {to: AdminDashboard, role: models.RoleAdmin},
	{AdminLogin, Back}:           {to: Landing},

	{StudentDashboard, VoteNow}: {to: Voting, role: models.RoleStudent},
	{StudentDashboard, Logout}:  {to: Landing},

	{Voting, VoteAccepted}: {to: VoteSuccess, role: models.RoleStudent},
	{Voting, VoteRejected}: {to: StudentDashboard, role: models.RoleStudent},
	{Voting, Back}:         {to: StudentDashboard},

	{VoteSuccess, Back}:   {to: StudentDashboard},
	{VoteSuccess, Logout}: {to: Landing},

	{AdminDashboard, ManageRoster}: {to: ManageCandidates, role: models.RoleAdmin},
	{AdminDashboard, ViewResults}:  {to: Results, role: models.RoleAdmin},
	{AdminDashboard, Logout}:       {to: Landing},

	{ManageCandidates, Back}: {to: AdminDashboard},
	{Results, Back}:          {to: AdminDashboard},
}

// Session is one user's navigation state machine. Per-user and
// single-threaded; it shares nothing with other sessions.
type Session struct {
	state   State
	role    string
	voter   *models.VoterIdentity
	lastErr string
}

// New starts a session on the landing screen, unauthenticated.
func New() *Session {
	return &Session{state: Landing}
}

func (s *Session) State() State      { return s.state }
func (s *Session) Role() string      { return s.role }
func (s *Session) LastError() string { return s.lastErr }

// Voter returns the verified identity, if the session has one.
func (s *Session) Voter() (models.VoterIdentity, bool) {
	if s.voter == nil {
		return models.VoterIdentity{}, false
	}
	return *s.voter, true
}

// AuthenticateStudent attaches a verified voter identity. Allowed only on
// the student login screen; the LoginSucceeded event then moves to the
// dashboard.
func (s *Session) AuthenticateStudent(identity models.VoterIdentity) error {
	if s.state != StudentLogin {
		return fmt.Errorf("%w: cannot authenticate student from %s", ErrInvalidTransition, s.state)
	}
	s.role = models.RoleStudent
	s.voter = &identity
	return s.Apply(LoginSucceeded)
}

// AuthenticateAdmin marks the session as an authenticated admin.
func (s *Session) AuthenticateAdmin() error {
	if s.state != AdminLogin {
		return fmt.Errorf("%w: cannot authenticate admin from %s", ErrInvalidTransition, s.state)
	}
	s.role = models.RoleAdmin
	return s.Apply(LoginSucceeded)
}

// Apply advances the machine. Unknown (state, event) pairs and role-guard
// failures are rejected without changing state. The Voting screen is
// additionally guarded on a verified voter identity, and VoteAccepted is
// only reachable after a recorded vote, which the caller signals by the
// event choice; VoteRejected surfaces the failure on the dashboard rather
// than silently re-entering the voting screen.
func (s *Session) Apply(ev Event) error {
	rule, ok := transitions[transitionKey{s.state, ev}]
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, s.state)
	}
	if rule.role != "" && rule.role != s.role {
		return fmt.Errorf("%w: %s requires role %s", ErrInvalidTransition, ev, rule.role)
	}
	if rule.to == Voting && s.voter == nil {
		return fmt.Errorf("%w: voting requires a verified voter identity", ErrInvalidTransition)
	}

	if ev == Logout {
		s.role = ""
		s.voter = nil
		s.lastErr = ""
	}
	s.state = rule.to
	return nil
}

// Fail routes a vote submission failure back to the dashboard with the
// reason kept for display.
func (s *Session) Fail(reason string) error {
	s.lastErr = reason
	return s.Apply(VoteRejected)
}
