// Package tui implements the interactive chat surface: a scrolling
// conversation feed, a prompt bar, and a spinner shown while the agent is
// out searching the web. Session settings can be changed mid-conversation
// with slash commands.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askweb/askweb/internal/agent"
	"github.com/askweb/askweb/internal/config"
	"github.com/askweb/askweb/providers/memory"
	"github.com/askweb/askweb/providers/memory/inmemory"
)

// Run opens the chat screen and blocks until the user quits.
func Run(ctx context.Context, builder *agent.Builder, settings config.Settings) error {
	if builder == nil {
		return fmt.Errorf("agent builder is required")
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	program := tea.NewProgram(
		NewModel(builder, settings),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

// Model implements the Bubble Tea model for the chat session.
type Model struct {
	builder  *agent.Builder
	settings config.Settings
	history  memory.Provider

	feed    viewport.Model
	input   textinput.Model
	spinner spinner.Model

	messages []chatMessage

	width  int
	height int
	ready  bool

	busy bool
}

// chatMessage is one rendered entry in the conversation feed.
type chatMessage struct {
	role    feedRole
	content string
}

// feedRole identifies who produced a feed entry.
type feedRole int

const (
	roleUser feedRole = iota
	roleAssistant
	roleSystem
	roleError
)

// NewModel builds the initial chat model with an empty conversation.
func NewModel(builder *agent.Builder, settings config.Settings) Model {
	input := textinput.New()
	input.Placeholder = "What would you like to know?"
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		builder:  builder,
		settings: settings,
		history:  inmemory.New(),
		input:    input,
		spinner:  spin,
		messages: []chatMessage{{
			role:    roleSystem,
			content: "Ask me anything, and I'll search the web for you. Type /help for commands.",
		}},
	}
}
