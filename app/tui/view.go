package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	promptBarHeight = 1
	statusBarHeight = 1
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	systemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// View renders the feed, the status line, and the prompt bar.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.feed.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

// statusLine shows the session settings, or progress while the agent runs.
func (m Model) statusLine() string {
	if m.busy {
		return m.spinner.View() + " Searching the web..."
	}
	return statusStyle.Render(fmt.Sprintf(
		"model=%s temperature=%.1f iterations=%d | /help for commands",
		m.settings.Model, m.settings.Temperature, m.settings.MaxIterations,
	))
}

// renderMessages formats the conversation for the viewport.
func (m Model) renderMessages() string {
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.role {
		case roleUser:
			b.WriteString(userStyle.Render("You: "))
			b.WriteString(msg.content)
		case roleAssistant:
			b.WriteString(assistantStyle.Render("Agent: "))
			b.WriteString(msg.content)
		case roleError:
			b.WriteString(errorStyle.Render(msg.content))
		default:
			b.WriteString(systemStyle.Render(msg.content))
		}
	}
	return b.String()
}
