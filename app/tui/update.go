package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// answerMsg carries a finished agent run back into the event loop.
type answerMsg struct {
	text string
}

// answerErrMsg carries a failed agent run back into the event loop.
type answerErrMsg struct {
	err error
}

// Init fulfills the Bubble Tea Model interface.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update applies incoming Bubble Tea messages to the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "ctrl+l":
			return m.clearConversation()
		case "enter":
			return m.submit()
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.feed, cmd = m.feed.Update(msg)
			return m, cmd
		default:
			if m.busy {
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case answerMsg:
		m.busy = false
		m.appendMessage(roleAssistant, msg.text)
		return m, nil

	case answerErrMsg:
		m.busy = false
		m.appendMessage(roleError, "An error occurred: "+msg.err.Error())
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleResize recomputes the feed and prompt layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	feedHeight := msg.Height - promptBarHeight - statusBarHeight
	if feedHeight < 1 {
		feedHeight = 1
	}
	if !m.ready {
		m.feed = viewport.New(msg.Width, feedHeight)
		m.ready = true
	} else {
		m.feed.Width = msg.Width
		m.feed.Height = feedHeight
	}
	m.input.Width = msg.Width - 4
	m.refreshFeed()
	return m, nil
}

// submit sends the prompt bar content to the agent, or runs it as a slash
// command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return m, nil
	}
	m.input.SetValue("")

	if strings.HasPrefix(question, "/") {
		return m.runCommand(question)
	}

	m.appendMessage(roleUser, question)
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.ask(question))
}

// ask runs one agent turn off the event loop and reports the outcome.
func (m Model) ask(question string) tea.Cmd {
	builder := m.builder
	settings := m.settings
	history := m.history
	return func() tea.Msg {
		webAgent, err := builder.Agent(settings)
		if err != nil {
			return answerErrMsg{err: err}
		}
		answer, err := webAgent.Run(context.Background(), history, question)
		if err != nil {
			return answerErrMsg{err: err}
		}
		return answerMsg{text: answer}
	}
}

// clearConversation wipes both the rendered feed and the agent memory.
func (m Model) clearConversation() (tea.Model, tea.Cmd) {
	m.history.ClearMessages(context.Background())
	m.messages = []chatMessage{{role: roleSystem, content: "Conversation cleared."}}
	m.refreshFeed()
	return m, nil
}

// appendMessage adds a feed entry and scrolls to the bottom.
func (m *Model) appendMessage(role feedRole, content string) {
	m.messages = append(m.messages, chatMessage{role: role, content: content})
	m.refreshFeed()
}

// refreshFeed re-renders the conversation into the viewport.
func (m *Model) refreshFeed() {
	if !m.ready {
		return
	}
	m.feed.SetContent(m.renderMessages())
	m.feed.GotoBottom()
}
