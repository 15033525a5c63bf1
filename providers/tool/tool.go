package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/askweb/askweb/core/cost"
	"github.com/askweb/askweb/core/parse"
	"github.com/askweb/askweb/internal/jsonschema"
	"github.com/askweb/askweb/providers/ai"
	"github.com/askweb/askweb/providers/observability"
)

// Tool represents a typed, callable tool that can be advertised to a
// language model. It binds a name and description to a strongly-typed Go
// function and derives JSON schemas for both input (I) and output (O) via
// reflection. Use [NewTool] to construct a Tool.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics contains optional cost and performance metadata for this tool.
	Metrics *cost.ToolMetrics
}

// GenericTool is the provider-agnostic interface for all tools. It abstracts
// over the concrete generic type parameters of [Tool] so tools can be stored,
// dispatched, and introspected without knowing their input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, parameter schema)
	// used to advertise this tool to the model.
	ToolInfo() ai.ToolDescription

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if input validation or
	// execution fails.
	Call(ctx context.Context, inputJson string) (string, error)

	// GetMetrics returns the cost metadata for this tool, or nil.
	GetMetrics() *cost.ToolMetrics
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// WithDescription sets the human-readable description for the tool. The
// model decides when to invoke the tool based on this text, so it should
// state what the tool does and what its input must be.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// WithMetrics sets the cost and performance metadata for the tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Metrics = &toolMetrics
	}
}

// NewTool constructs a [Tool] with the given name and handler function.
// JSON schemas for the input type I and output type O are derived
// automatically via reflection.
//
// Example:
//
//	searchTool := tool.NewTool("Search", searchFunc,
//	    tool.WithDescription("Useful for searching the web for information. Input should be a search query."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metrics:     toolOptions.Metrics,
	}
}

// ToolInfo returns the [ai.ToolDescription] used to advertise this tool.
func (t *Tool[I, O]) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. The input is validated by deserializing it into the tool's input
// type I (repairing malformed JSON where possible); the result is returned
// serialized as JSON, or verbatim for tools with a plain string output.
// Span events are emitted when a span is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJson),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	parsedInput, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		err = fmt.Errorf("invalid input for tool %s: %w", t.Name, err)
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
		}
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return "", err
	}

	// String outputs pass through verbatim; anything else is serialized
	// as JSON.
	outputString, isString := any(output).(string)
	if !isString {
		outputBytes, err := json.Marshal(output)
		if err != nil {
			if span != nil {
				span.RecordError(err)
			}
			return "", err
		}
		outputString = string(outputBytes)
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrToolOutput, outputString),
			observability.Duration(observability.AttrToolDuration, duration),
		}
		if t.Metrics != nil {
			attrs = append(attrs,
				observability.Float64("tool.cost.amount", t.Metrics.Amount),
				observability.String("tool.cost.currency", t.Metrics.Currency),
			)
		}
		span.SetAttributes(attrs...)
	}

	return outputString, nil
}

// GetMetrics returns the cost metadata for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
