package react

import (
	"context"
	"fmt"

	"github.com/askweb/askweb/providers/ai"
	"github.com/askweb/askweb/providers/memory"
	"github.com/askweb/askweb/providers/observability"
	"github.com/askweb/askweb/providers/tool"
)

// DefaultMaxIterations is the reason-act budget used when no override is set.
const DefaultMaxIterations = 5

// Agent runs the reason-act loop against an LLM provider and a tool catalog.
// It is stateless between runs: the conversation history lives in the
// [memory.Provider] passed to [Agent.Run], so one Agent can serve many
// conversations.
type Agent struct {
	provider      ai.Provider
	catalog       *tool.Catalog
	tracer        observability.Tracer
	model         string
	systemPrompt  string
	temperature   *float64
	maxIterations int
}

// Option configures an [Agent].
type Option func(*Agent)

// WithModel sets the model identifier sent with every request.
func WithModel(model string) Option {
	return func(a *Agent) { a.model = model }
}

// WithSystemPrompt sets the system prompt prepended to every request.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) { a.systemPrompt = prompt }
}

// WithTemperature sets the sampling temperature for every request.
func WithTemperature(temperature float64) Option {
	return func(a *Agent) { a.temperature = &temperature }
}

// WithMaxIterations sets the reason-act iteration budget. Values below one
// are ignored.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n >= 1 {
			a.maxIterations = n
		}
	}
}

// WithTracer sets the tracer used to record the run. Defaults to a no-op.
func WithTracer(tracer observability.Tracer) Option {
	return func(a *Agent) { a.tracer = tracer }
}

// New builds an [Agent] around the given provider and tool catalog.
func New(provider ai.Provider, catalog *tool.Catalog, options ...Option) *Agent {
	agent := &Agent{
		provider:      provider,
		catalog:       catalog,
		tracer:        observability.Noop(),
		maxIterations: DefaultMaxIterations,
	}
	for _, option := range options {
		option(agent)
	}
	return agent
}

// Run appends question to history as a user message, then loops: send the
// history and tool descriptions to the model, execute any tool calls it
// makes, append the results, and repeat until the model stops or the
// iteration budget is spent. Every message the loop produces is appended to
// history, so subsequent runs on the same history see the whole dialogue.
//
// Tool dispatch failures are not fatal: the error text is appended as the
// tool result so the model can read it and recover. Run fails only when the
// provider itself fails or the context is cancelled.
//
// When the budget runs out with the model still asking for tools, one final
// request is sent with tool calling disabled to force a plain-text answer.
func (a *Agent) Run(ctx context.Context, history memory.Provider, question string) (string, error) {
	ctx, span := a.tracer.StartSpan(ctx, "react.run",
		observability.String(observability.AttrLLMModel, a.model),
		observability.Int(observability.AttrAgentMaxIterations, a.maxIterations),
	)
	defer span.End()

	history.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: question})

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		span.SetAttributes(observability.Int(observability.AttrAgentIteration, iteration))

		response, err := a.send(ctx, history, "")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "provider call failed")
			return "", err
		}

		history.AppendMessage(ctx, &ai.Message{
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		if len(response.ToolCalls) == 0 || a.provider.IsStopMessage(response) {
			span.SetStatus(observability.StatusOK, "")
			return response.Content, nil
		}

		for _, call := range response.ToolCalls {
			history.AppendMessage(ctx, &ai.Message{
				Role:       ai.RoleTool,
				Content:    a.dispatch(ctx, call),
				ToolCallID: call.ID,
				Name:       call.Function.Name,
			})
		}
	}

	// Budget spent with tools still in flight: ask once more with tool
	// calling disabled so the model must answer from what it has.
	span.AddEvent(observability.EventAgentForcedAnswer)

	response, err := a.send(ctx, history, "none")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "forced answer failed")
		return "", err
	}

	history.AppendMessage(ctx, &ai.Message{Role: ai.RoleAssistant, Content: response.Content})
	span.SetStatus(observability.StatusOK, "")
	return response.Content, nil
}

// send builds a chat request from the current history and dispatches it.
func (a *Agent) send(ctx context.Context, history memory.Provider, toolChoice string) (*ai.ChatResponse, error) {
	messages, err := history.AllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation history: %w", err)
	}

	request := ai.ChatRequest{
		Model:        a.model,
		Messages:     messages,
		SystemPrompt: a.systemPrompt,
		ToolChoice:   toolChoice,
	}
	if toolChoice != "none" {
		request.Tools = a.catalog.Descriptions()
	}
	if a.temperature != nil {
		request.GenerationConfig = &ai.GenerationConfig{Temperature: a.temperature}
	}

	return a.provider.SendMessage(ctx, request)
}

// dispatch executes a single tool call and returns the text fed back to the
// model. Unknown tools and execution errors are reported in the text rather
// than aborting the run.
func (a *Agent) dispatch(ctx context.Context, call ai.ToolCall) string {
	name := call.Function.Name

	requested, found := a.catalog.Get(name)
	if !found {
		return fmt.Sprintf("Error: unknown tool %q. Available tools: %s", name, a.toolNames())
	}

	output, err := requested.Call(ctx, call.Function.Arguments)
	if err != nil {
		return fmt.Sprintf("Error executing tool %q: %s", name, err.Error())
	}
	return output
}

func (a *Agent) toolNames() string {
	names := ""
	for i, description := range a.catalog.Descriptions() {
		if i > 0 {
			names += ", "
		}
		names += description.Name
	}
	return names
}
