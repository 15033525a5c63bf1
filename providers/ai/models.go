package ai

import (
	"github.com/askweb/askweb/internal/jsonschema"
)

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // All messages in the conversation except the system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	Tools            []ToolDescription `json:"tools,omitempty"`             // Tool definitions advertised to the model
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
	ToolChoice       string            `json:"tool_choice,omitempty"`       // "auto" (default), "none" to forbid tool calls, "required" to force one
}

// ToolDescription advertises a callable tool to the model: a name, a
// natural-language description the model uses to decide when to invoke it,
// and a schema for the arguments it must supply.
type ToolDescription struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// Message represents a single message in a conversation
type Message struct {
	// Core fields (always present)
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`

	// Tool calling fields
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // For role=assistant requesting tools
	ToolCallID string     `json:"tool_call_id,omitempty"` // For role=tool, links to the tool call being responded to
	Name       string     `json:"name,omitempty"`         // For role=tool, name of the tool that generated this response
}

// GenerationConfig carries sampling parameters passed through to the model.
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature. Higher => more random; lower => more deterministic.
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Optional max tokens for the response
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports token consumption for a single completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the response from a chat completion
type ChatResponse struct {
	Id           string     `json:"id"`
	Model        string     `json:"model"`
	Created      int64      `json:"created"`
	Content      string     `json:"content"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
	Usage        *Usage     `json:"usage,omitempty"`
	Refusal      string     `json:"refusal,omitempty"` // If the model refuses to respond (safety/policy)
}

/*
	##### ENUMS #####
*/

// ToolCall represents a function/tool call request from the LLM
type ToolCall struct {
	ID       string           `json:"id,omitempty"` // Unique identifier for this tool call
	Type     string           `json:"type"`         // "function"
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction names the tool and carries its JSON-encoded arguments.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
	RoleTool      MessageRole = "tool"      // Tool/function output
)
