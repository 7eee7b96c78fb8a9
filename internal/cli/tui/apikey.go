// Package tui provides the interactive prompts used by the CLI.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptHelpStyle  = lipgloss.NewStyle().Faint(true)
)

// APIKeyPrompt asks for an API key with masked input.
type APIKeyPrompt struct {
	input   textinput.Model
	done    bool
	aborted bool
}

// NewAPIKeyPrompt builds the prompt model.
func NewAPIKeyPrompt() *APIKeyPrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "your API key"
	ti.Width = 48
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	return &APIKeyPrompt{input: ti}
}

func (p *APIKeyPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (p *APIKeyPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			p.done = true
			return p, tea.Quit
		case "esc", "ctrl+c":
			p.aborted = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *APIKeyPrompt) View() string {
	if p.done || p.aborted {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		promptTitleStyle.Render("Enter your Reocities API key"),
		p.input.View(),
		promptHelpStyle.Render("enter to confirm, esc to cancel"))
}

// Ok reports whether the user confirmed a value.
func (p *APIKeyPrompt) Ok() bool {
	return p.done && !p.aborted
}

// Value returns the entered key.
func (p *APIKeyPrompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// PromptAPIKey runs the prompt and returns the entered key. An empty string
// with nil error means the user canceled.
func PromptAPIKey() (string, error) {
	prompt := NewAPIKeyPrompt()
	p := tea.NewProgram(prompt)
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("failed to run TUI: %w", err)
	}
	if !prompt.Ok() {
		return "", nil
	}
	return prompt.Value(), nil
}
