// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ routing.

Routes group into public (auth, election status, active candidates,
health, metrics), student-gated (vote submission, own state), and
admin-gated (roster management, election transitions, results). Role
gates wrap handlers with middleware.RequireRole; everything is logged
through middleware.WithLogging.
*/
package router
