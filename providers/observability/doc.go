// Package observability provides a minimal tracing abstraction used around
// language-model calls and tool executions.
//
// A [Tracer] starts [Span]s; spans collect attributes, events, and errors and
// report their duration on End. Spans travel through contexts via
// [ContextWithSpan] and [SpanFromContext], so deeply nested code can enrich
// the current span without plumbing it explicitly.
//
// The slogobs subpackage provides the standard implementation backed by
// log/slog. [Noop] is the do-nothing fallback for tests and callers that do
// not care about tracing.
package observability
