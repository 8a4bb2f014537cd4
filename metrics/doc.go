// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for the voting path:
accepted and rejected submissions (labelled by rejection reason) and a
handling-time histogram. Collectors register against an injected
Registerer so tests can use isolated registries.
*/
package metrics
