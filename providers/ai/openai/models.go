package openai

import (
	"github.com/askweb/askweb/internal/jsonschema"
	"github.com/askweb/askweb/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_completion_tokens,omitempty"`

	Tools      []chatTool  `json:"tools,omitempty"`
	ToolChoice interface{} `json:"tool_choice,omitempty"` // "auto", "none", "required", or object
}

type chatMessage struct {
	Role       string         `json:"role"`              // system, user, assistant, tool
	Content    string         `json:"content,omitempty"` // always plain text in this client
	Name       string         `json:"name,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"` // For role=tool
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`   // For role=assistant
}

type chatTool struct {
	Type     string       `json:"type"` // "function"
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

type chatToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // "function"
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"` // JSON string, parsed later with ParseStringAs
	} `json:"function"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "tool_calls", "content_filter"
}

type chatResponseMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Refusal   string         `json:"refusal,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CONVERSION
*/

// requestFromGeneric maps the provider-agnostic request onto the chat
// completions wire format. The system prompt is folded in as the leading
// system message.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	out := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		out.Messages = append(out.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, message := range request.Messages {
		out.Messages = append(out.Messages, messageFromGeneric(message))
	}

	for _, tool := range request.Tools {
		out.Tools = append(out.Tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	if request.ToolChoice != "" {
		out.ToolChoice = request.ToolChoice
	}

	if cfg := request.GenerationConfig; cfg != nil {
		out.Temperature = cfg.Temperature
		if cfg.MaxTokens > 0 {
			out.MaxTokens = &cfg.MaxTokens
		}
	}

	return out
}

func messageFromGeneric(message ai.Message) chatMessage {
	out := chatMessage{
		Role:       string(message.Role),
		Content:    message.Content,
		Name:       message.Name,
		ToolCallID: message.ToolCallID,
	}
	for _, call := range message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, toolCallFromGeneric(call))
	}
	return out
}

func toolCallFromGeneric(call ai.ToolCall) chatToolCall {
	out := chatToolCall{
		ID:   call.ID,
		Type: call.Type,
	}
	out.Function.Name = call.Function.Name
	out.Function.Arguments = call.Function.Arguments
	return out
}

// responseToGeneric maps the first choice of a chat completions response back
// to the provider-agnostic form.
func responseToGeneric(response chatCompletionResponse) *ai.ChatResponse {
	out := &ai.ChatResponse{
		Id:      response.ID,
		Model:   response.Model,
		Created: response.Created,
	}

	if response.Usage != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}

	if len(response.Choices) == 0 {
		return out
	}

	choice := response.Choices[0]
	out.Content = choice.Message.Content
	out.Refusal = choice.Message.Refusal
	out.FinishReason = choice.FinishReason

	for _, call := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ai.ToolCall{
			ID:   call.ID,
			Type: call.Type,
			Function: ai.ToolCallFunction{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		})
	}

	return out
}
