// Package ai defines the provider-agnostic types and interfaces for talking
// to hosted language models. Each provider's conversion layer maps these
// types to its own wire format, keeping the rest of the codebase decoupled
// from provider-specific details.
//
// The central interface is [Provider] for synchronous chat completions.
// Request data flows through [ChatRequest] and responses come back as
// [ChatResponse]; tool invocations requested by the model are carried as
// [ToolCall] values.
package ai
