// Package slogobs implements [observability.Tracer] on top of the standard
// library's log/slog, giving lightweight structured span logging without any
// external tracing backend.
package slogobs
