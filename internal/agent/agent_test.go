package agent

import (
	"context"
	"net/http"
	"testing"

	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/providers/ai"
)

type stubProvider struct{}

func (stubProvider) SendMessage(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
	return &ai.ChatResponse{Content: "ok", FinishReason: "stop"}, nil
}

func (stubProvider) IsStopMessage(*ai.ChatResponse) bool { return true }

func (s stubProvider) WithAPIKey(string) ai.Provider { return s }

func (s stubProvider) WithBaseURL(string) ai.Provider { return s }

func (s stubProvider) WithHttpClient(*http.Client) ai.Provider { return s }

// TestAgentMemoization checks that equal settings reuse the same instance
// and different settings do not.
func TestAgentMemoization(t *testing.T) {
	builder := NewBuilder(stubProvider{})

	settings := config.Default()
	first, err := builder.Agent(settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := builder.Agent(settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected equal settings to return the cached agent")
	}

	changed := settings
	changed.Temperature = 0.9
	third, err := builder.Agent(changed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third == first {
		t.Error("expected different settings to build a new agent")
	}
}

// TestAgentRejectsInvalidSettings checks validation happens before building.
func TestAgentRejectsInvalidSettings(t *testing.T) {
	builder := NewBuilder(stubProvider{})

	bad := config.Default()
	bad.Model = "llama-3"
	if _, err := builder.Agent(bad); err == nil {
		t.Fatal("expected an error for an unsupported model")
	}

	bad = config.Default()
	bad.MaxIterations = 0
	if _, err := builder.Agent(bad); err == nil {
		t.Fatal("expected an error for a zero iteration budget")
	}
}

// TestNewCatalog checks the default tool set.
func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()

	if catalog.Size() != 2 {
		t.Fatalf("expected 2 tools, got %d", catalog.Size())
	}
	for _, name := range []string{"Search", "WebScraper"} {
		if !catalog.Has(name) {
			t.Errorf("expected tool %q to be registered", name)
		}
	}
}
