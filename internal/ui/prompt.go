package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input asks the user for a line of text on stderr and returns the
// entered value. prefill is placed in the input box as an editable
// default (the previous answer when re-entering a step, or the value
// that just failed validation). Esc or ctrl+c returns ErrCancelled.
func Input(label, prefill string) (string, error) {
	ti := textinput.New()
	ti.SetValue(prefill)
	ti.CursorEnd()
	ti.Focus()
	ti.PromptStyle = AccentStyle
	ti.TextStyle = lipgloss.NewStyle()

	m := &inputModel{
		label:     label,
		textInput: ti,
	}
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("text prompt: %w", err)
	}

	if m.cancelled {
		return "", ErrCancelled
	}
	return m.textInput.Value(), nil
}

// inputModel is a bubbletea model for text input.
type inputModel struct {
	label     string
	textInput textinput.Model
	cancelled bool
	submitted bool
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(AccentStyle.Render("?") + " " + m.label + " " + MutedStyle.Render("(esc to go back)") + "\n")
	sb.WriteString(m.textInput.View() + "\n")
	return sb.String()
}
