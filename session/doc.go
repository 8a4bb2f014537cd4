// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session models per-user navigation as an explicit finite-state
machine.

States mirror the screens: Landing, StudentLogin, AdminLogin,
StudentDashboard, Voting, VoteSuccess, AdminDashboard, ManageCandidates,
Results. All transitions live in one (state, event) table; screens never
decide routing themselves.

# Guards

  - LoginSucceeded requires the matching role, set via AuthenticateStudent
    or AuthenticateAdmin.
  - Voting is reachable only with a verified voter identity.
  - VoteAccepted moves to VoteSuccess; VoteRejected returns to the
    dashboard with the failure reason kept in LastError, so a failed
    submission is surfaced instead of silently re-entering the ballot.
  - Logout clears role, identity, and error, from any state that allows it.

Sessions are single-threaded per user and hold no shared state.
*/
package session
