// Package tracing integrates OpenTelemetry with the allocator so that each
// stage of a run (choice-level build, round one, round two) shows up as a
// span.  Without Init the global no-op provider is used.
package tracing
