// SPDX-License-Identifier: MIT

// Package server exposes the inversion engine over HTTP.
//
//	POST /v1/inverse      {"matrix": [[4,7],[2,6]], "steps": true}
//	POST /v1/determinant  {"matrix": [[4,7],[2,6]]}
//	POST /v1/fraction     {"value": 0.6}
//	GET  /healthz
//	GET  /metrics         Prometheus exposition
//
// Every request gets an X-Request-ID, a structured log line and a per-client
// rate limit. Each request builds its own adjugate.Engine.
package server
