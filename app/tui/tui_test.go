package tui

import (
	"context"
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askweb/askweb/internal/agent"
	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/providers/ai"
)

type stubProvider struct{}

func (stubProvider) SendMessage(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
	return &ai.ChatResponse{Content: "stub answer", FinishReason: "stop"}, nil
}

func (stubProvider) IsStopMessage(*ai.ChatResponse) bool { return true }

func (s stubProvider) WithAPIKey(string) ai.Provider { return s }

func (s stubProvider) WithBaseURL(string) ai.Provider { return s }

func (s stubProvider) WithHttpClient(*http.Client) ai.Provider { return s }

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(agent.NewBuilder(stubProvider{}), config.Default())
	// Simulate the first resize so the viewport exists.
	updated, _ := m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

// TestSlashCommands covers the settings commands in the prompt bar.
func TestSlashCommands(t *testing.T) {
	t.Run("model switch", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.runCommand("/model gpt-4o-mini")
		m = updated.(Model)
		if m.settings.Model != config.ModelGPT4oMini {
			t.Errorf("expected the model to change, got %q", m.settings.Model)
		}
	})

	t.Run("invalid model is rejected", func(t *testing.T) {
		m := newTestModel(t)
		before := m.settings
		updated, _ := m.runCommand("/model claude-3")
		m = updated.(Model)
		if m.settings != before {
			t.Error("expected rejected settings to leave the session unchanged")
		}
		last := m.messages[len(m.messages)-1]
		if last.role != roleError {
			t.Errorf("expected an error feed entry, got role %d", last.role)
		}
	})

	t.Run("temperature and iterations", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.runCommand("/temperature 0.9")
		m = updated.(Model)
		updated, _ = m.runCommand("/iterations 3")
		m = updated.(Model)
		if m.settings.Temperature != 0.9 || m.settings.MaxIterations != 3 {
			t.Errorf("expected updated settings, got %+v", m.settings)
		}
	})

	t.Run("out-of-range temperature is rejected", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.runCommand("/temperature 1.5")
		m = updated.(Model)
		if m.settings.Temperature != config.DefaultTemperature {
			t.Errorf("expected the temperature to stay at the default, got %v", m.settings.Temperature)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.runCommand("/bogus")
		m = updated.(Model)
		last := m.messages[len(m.messages)-1]
		if last.role != roleError || !strings.Contains(last.content, "unknown command") {
			t.Errorf("expected an unknown-command report, got %+v", last)
		}
	})
}

// TestSubmitQuestion checks that a submitted question lands in the feed and
// starts an agent run.
func TestSubmitQuestion(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("what is Go?")

	updated, cmd := m.submit()
	m = updated.(Model)

	if !m.busy {
		t.Error("expected the model to be busy after submitting")
	}
	if cmd == nil {
		t.Fatal("expected a command to run the agent")
	}
	last := m.messages[len(m.messages)-1]
	if last.role != roleUser || last.content != "what is Go?" {
		t.Errorf("expected the question in the feed, got %+v", last)
	}
}

// TestAnswerArrival checks that agent results are appended to the feed.
func TestAnswerArrival(t *testing.T) {
	m := newTestModel(t)
	m.busy = true

	updated, _ := m.Update(answerMsg{text: "here you go"})
	m = updated.(Model)

	if m.busy {
		t.Error("expected the model to be idle after the answer arrived")
	}
	last := m.messages[len(m.messages)-1]
	if last.role != roleAssistant || last.content != "here you go" {
		t.Errorf("expected the answer in the feed, got %+v", last)
	}
}

// TestAskRunsTheAgent drives the full ask command against the stub provider.
func TestAskRunsTheAgent(t *testing.T) {
	m := newTestModel(t)

	msg := m.ask("anything")()
	answer, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("expected an answerMsg, got %T", msg)
	}
	if answer.text != "stub answer" {
		t.Errorf("expected the provider answer, got %q", answer.text)
	}
}

// TestClearConversation checks ctrl+l empties feed and memory.
func TestClearConversation(t *testing.T) {
	m := newTestModel(t)
	m.appendMessage(roleUser, "question")
	m.appendMessage(roleAssistant, "answer")

	updated, _ := m.clearConversation()
	m = updated.(Model)

	if len(m.messages) != 1 {
		t.Errorf("expected only the cleared notice in the feed, got %d entries", len(m.messages))
	}
	count, _ := m.history.Count(context.Background())
	if count != 0 {
		t.Errorf("expected the agent memory to be cleared, got %d messages", count)
	}
}
