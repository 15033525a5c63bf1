package observability

import (
	"context"
	"fmt"
	"time"
)

// Tracer starts spans that record the lifecycle of a unit of work.
type Tracer interface {
	// StartSpan starts a new span and returns a context carrying it.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span represents a single traced unit of work.
type Span interface {
	// End completes the span.
	End()
	// SetAttributes adds attributes to the span.
	SetAttributes(attrs ...Attribute)
	// SetStatus sets the final status of the span.
	SetStatus(code StatusCode, description string)
	// RecordError records an error against the span.
	RecordError(err error)
	// AddEvent records a named point-in-time event on the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode represents the final status of a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// Attribute is a key-value pair of span metadata.
type Attribute struct {
	Key   string
	Value interface{}
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute. A nil error yields an empty value.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: fmt.Sprint(err)}
}

// Noop returns a tracer whose spans discard everything.
func Noop() Tracer {
	return noopTracer{}
}

type noopTracer struct{}

func (noopTracer) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                          {}
func (noopSpan) SetAttributes(...Attribute)    {}
func (noopSpan) SetStatus(StatusCode, string)  {}
func (noopSpan) RecordError(error)             {}
func (noopSpan) AddEvent(string, ...Attribute) {}
