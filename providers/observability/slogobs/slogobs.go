package slogobs

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/askweb/askweb/providers/observability"
)

// Observer implements [observability.Tracer] using slog. Span lifecycle,
// events, and errors are emitted as structured log records; span start and
// end are logged at debug level to keep the default output quiet.
type Observer struct {
	logger *slog.Logger
}

// options holds optional configuration for [New].
type options struct {
	logger *slog.Logger
	level  slog.Leveler
}

// Option configures an [Observer].
type Option func(*options)

// WithLogger uses an existing slog.Logger instead of constructing one.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLevel sets the minimum log level when no logger is supplied.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// New creates a slog-backed observer. Without options it logs to stderr at
// the level named by the ASKWEB_LOG_LEVEL environment variable ("debug",
// "info", "warn", "error"), defaulting to info.
func New(opts ...Option) *Observer {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		level := cfg.level
		if level == nil {
			level = levelFromEnv()
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	return &Observer{logger: logger}
}

// levelFromEnv maps ASKWEB_LOG_LEVEL to a slog level, defaulting to info.
func levelFromEnv() slog.Level {
	switch os.Getenv("ASKWEB_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Ensure Observer implements observability.Tracer at compile time.
var _ observability.Tracer = (*Observer)(nil)

// StartSpan begins a named span and returns a context carrying it. The span
// records its duration when End is called.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{
		name:    name,
		started: time.Now(),
		logger:  o.logger,
		attrs:   attrs,
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "span started", span.logAttrs("span.start")...)

	return observability.ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	name    string
	started time.Time
	logger  *slog.Logger

	mu     sync.Mutex
	attrs  []observability.Attribute
	status observability.StatusCode
	desc   string
}

// End logs the span completion with its accumulated attributes and duration.
func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	level := slog.LevelDebug
	if s.status == observability.StatusError {
		level = slog.LevelWarn
	}

	logAttrs := s.logAttrs("span.end")
	logAttrs = append(logAttrs, slog.Duration("duration", time.Since(s.started)))
	if s.desc != "" {
		logAttrs = append(logAttrs, slog.String("status", s.desc))
	}

	s.logger.LogAttrs(context.Background(), level, "span ended", logAttrs...)
}

// SetAttributes appends attributes kept for the lifetime of the span.
func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	s.attrs = append(s.attrs, attrs...)
	s.mu.Unlock()
}

// SetStatus records the terminal status emitted with the span end record.
func (s *slogSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	s.status = code
	s.desc = description
	s.mu.Unlock()
}

// RecordError logs the error immediately and marks the span as failed.
func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	s.status = observability.StatusError
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelError, "span error",
		slog.String("span", s.name),
		slog.String("error", err.Error()),
	)
}

// AddEvent logs a point-in-time event within the span.
func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "span event", logAttrs...)
}

// logAttrs builds the base attribute set shared by the start and end records.
// Callers must hold s.mu or guarantee exclusive access.
func (s *slogSpan) logAttrs(event string) []slog.Attr {
	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", event),
	}
	for _, attr := range s.attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	return logAttrs
}
