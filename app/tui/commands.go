package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askweb/askweb/internal/config"
)

const helpText = `Commands:
  /model <name>          switch model (gpt-4o, gpt-4o-mini)
  /temperature <0.0-1.0> set the sampling temperature
  /iterations <1-10>     set the search iteration budget
  /clear                 clear the conversation (also ctrl+l)
  /help                  show this message
  /quit                  exit (also ctrl+c)`

// runCommand executes a slash command typed into the prompt bar. Setting
// changes are validated before they are applied; a rejected change leaves
// the session untouched.
func (m Model) runCommand(raw string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(raw)
	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	switch name {
	case "help", "h", "?":
		m.appendMessage(roleSystem, helpText)
		return m, nil

	case "clear", "cls":
		return m.clearConversation()

	case "quit", "q", "exit":
		return m, tea.Quit

	case "model":
		if len(args) != 1 {
			m.appendMessage(roleError, "usage: /model <name>")
			return m, nil
		}
		return m.applySettings(func(s *config.Settings) { s.Model = args[0] })

	case "temperature", "temp":
		if len(args) != 1 {
			m.appendMessage(roleError, "usage: /temperature <0.0-1.0>")
			return m, nil
		}
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			m.appendMessage(roleError, fmt.Sprintf("invalid temperature %q", args[0]))
			return m, nil
		}
		return m.applySettings(func(s *config.Settings) { s.Temperature = value })

	case "iterations", "iters":
		if len(args) != 1 {
			m.appendMessage(roleError, "usage: /iterations <1-10>")
			return m, nil
		}
		value, err := strconv.Atoi(args[0])
		if err != nil {
			m.appendMessage(roleError, fmt.Sprintf("invalid iteration count %q", args[0]))
			return m, nil
		}
		return m.applySettings(func(s *config.Settings) { s.MaxIterations = value })

	default:
		m.appendMessage(roleError, fmt.Sprintf("unknown command /%s, try /help", name))
		return m, nil
	}
}

// applySettings validates and applies a settings change.
func (m Model) applySettings(change func(*config.Settings)) (tea.Model, tea.Cmd) {
	updated := m.settings
	change(&updated)
	if err := updated.Validate(); err != nil {
		m.appendMessage(roleError, err.Error())
		return m, nil
	}
	m.settings = updated
	m.appendMessage(roleSystem, fmt.Sprintf(
		"Settings updated: model=%s temperature=%.1f iterations=%d",
		updated.Model, updated.Temperature, updated.MaxIterations,
	))
	return m, nil
}
