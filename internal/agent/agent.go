// Package agent assembles the web-research agent: the LLM provider, the
// Search and WebScraper tools, and the reason-act runtime, configured from
// a [config.Settings] tuple. Builders memoize agents per settings tuple so
// that tweaking a slider mid-session does not rebuild everything on every
// question.
package agent

import (
	"sync"

	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/patterns/react"
	"github.com/askweb/askweb/providers/ai"
	"github.com/askweb/askweb/providers/observability"
	"github.com/askweb/askweb/providers/tool"
	"github.com/askweb/askweb/providers/tool/duckduckgo"
	"github.com/askweb/askweb/providers/tool/webscraper"
)

// systemPrompt frames the agent as a web researcher. The model is told to
// ground answers in tool results rather than in its training data.
const systemPrompt = `You are a helpful web research assistant. Answer the user's questions by searching the web and reading web pages with the tools available to you. Ground your answers in what the tools return and cite the sources you used. If the tools return nothing useful, say so instead of guessing.`

// Builder constructs and caches agents keyed by their settings tuple.
// Agents are stateless, so one cached instance can safely serve every
// question asked with the same settings.
type Builder struct {
	provider ai.Provider
	catalog  *tool.Catalog
	tracer   observability.Tracer

	mu    sync.Mutex
	cache map[config.Settings]*react.Agent
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithCatalog overrides the default tool catalog.
func WithCatalog(catalog *tool.Catalog) BuilderOption {
	return func(b *Builder) { b.catalog = catalog }
}

// WithTracer sets the tracer passed to every built agent.
func WithTracer(tracer observability.Tracer) BuilderOption {
	return func(b *Builder) { b.tracer = tracer }
}

// NewBuilder returns a [Builder] around the given LLM provider. Unless
// overridden, built agents carry the default web-research catalog from
// [NewCatalog].
func NewBuilder(provider ai.Provider, options ...BuilderOption) *Builder {
	builder := &Builder{
		provider: provider,
		tracer:   observability.Noop(),
		cache:    make(map[config.Settings]*react.Agent),
	}
	for _, option := range options {
		option(builder)
	}
	if builder.catalog == nil {
		builder.catalog = NewCatalog()
	}
	return builder
}

// Agent returns the agent for the given settings, building it on first use.
// Settings are validated before anything is built; equal settings always
// yield the same instance.
func (b *Builder) Agent(settings config.Settings) (*react.Agent, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if cached, found := b.cache[settings]; found {
		return cached, nil
	}

	built := react.New(b.provider, b.catalog,
		react.WithModel(settings.Model),
		react.WithSystemPrompt(systemPrompt),
		react.WithTemperature(settings.Temperature),
		react.WithMaxIterations(settings.MaxIterations),
		react.WithTracer(b.tracer),
	)
	b.cache[settings] = built
	return built, nil
}

// NewCatalog returns the web-research tool catalog: Search and WebScraper.
func NewCatalog() *tool.Catalog {
	return tool.NewCatalogWithTools(
		duckduckgo.NewSearchTool(),
		webscraper.NewWebScraperTool(),
	)
}
