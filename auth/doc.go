// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the authenticator and session tokens.

# Student Login

Two steps. First the student submits name, roll number, register number,
and email; SendVerificationCode validates the details, issues a 6-digit
code, and returns an opaque challenge ID. Code delivery is out of scope;
the code is logged in place of the mail sender. Second, Verify exchanges
the challenge ID and code for a VoterIdentity.

The voter reference is derived, not stored:

	ref := auth.DeriveVoterRef(roll, register, salt)

The same (roll, register) pair always maps to the same reference for a
given salt, which is what makes the one-ballot-per-voter check possible
without keeping a roll-number table next to ballots.

# Admin Login

Admin credentials are a configured ID plus a bcrypt password hash.
CheckAdminPassword compares them; HashAdminPassword exists for setup and
tests.

# Session Tokens

TokenService signs HS256 JWTs carrying a role claim and, for students,
the voter reference. Parse rejects anything not HS256-signed with the
configured key.

# Errors

  - ErrInvalidCredentials: malformed login input or failed password check
  - ErrUnknownChallenge: challenge ID unknown or expired
  - ErrCodeMismatch: wrong verification code
  - ErrInvalidToken: session token failed validation
*/
package auth
