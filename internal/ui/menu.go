package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Select shows a vertical menu on stderr and returns the index of the
// chosen option. Esc or ctrl+c returns ErrCancelled.
func Select(title string, options []string) (int, error) {
	m := &menuModel{title: title, options: options}
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return 0, fmt.Errorf("menu prompt: %w", err)
	}

	if m.cancelled {
		return 0, ErrCancelled
	}
	return m.cursor, nil
}

// menuModel is a bubbletea model for a single-choice menu.
type menuModel struct {
	title     string
	options   []string
	cursor    int
	chosen    bool
	cancelled bool
}

func (m *menuModel) Init() tea.Cmd { return nil }

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *menuModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(AccentStyle.Render("?") + " " + m.title + "\n")
	for i, opt := range m.options {
		if i == m.cursor {
			sb.WriteString(AccentStyle.Render("> ") + opt + "\n")
			continue
		}
		sb.WriteString("  " + MutedStyle.Render(opt) + "\n")
	}
	sb.WriteString(MutedStyle.Render("  ↑/↓ move · enter select · esc quit") + "\n")
	return sb.String()
}
