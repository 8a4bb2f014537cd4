// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: request start/completion logging with duration
  - CORS: cross-origin headers and preflight handling
  - RequireRole: bearer session-token validation plus role enforcement;
    parsed claims are stored in the request context and retrieved with
    ClaimsFrom

# Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a models.ErrorResponse
  - ParseJSONBody: decodes a JSON request body
*/
package middleware
