// Package memory defines the Provider interface for conversation history.
// Implementations store and retrieve [ai.Message] values across a chat
// session: every user question, assistant reply, and tool result a turn
// produces is appended so later turns see the full dialogue. Read methods
// return errors so that database-backed implementations can surface failures
// instead of silently swallowing them.
// The bundled reference implementation lives in the sibling package
// [github.com/askweb/askweb/providers/memory/inmemory].
package memory
