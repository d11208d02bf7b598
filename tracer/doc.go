// SPDX-License-Identifier: MIT

// Package tracer provides sinks for the adjugate Tracer port: an in-memory
// Recorder, a zap-backed Logger, a plain-text Writer and a Multi fan-out.
package tracer
