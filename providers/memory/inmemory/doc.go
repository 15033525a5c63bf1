// Package inmemory provides a process-local [memory.Provider] backed by a
// slice. It is the default history store for interactive chat sessions,
// where the conversation lives and dies with the process.
package inmemory
