// Package openai implements [ai.Provider] against the OpenAI Chat
// Completions API (and any compatible endpoint via OPENAI_API_BASE_URL).
//
// Construct it with [NewOpenAIProvider]; configuration is read from the
// OPENAI_API_KEY and OPENAI_API_BASE_URL environment variables and can be
// overridden with the Provider's With* methods.
package openai
