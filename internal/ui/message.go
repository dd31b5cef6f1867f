package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Message shows a modal message box on stderr and blocks until the
// user dismisses it. Used for validation errors ("Invalid URL") and
// completion notices; dismissal is the only outcome, so unlike Input
// there is no cancellation to report.
func Message(title, text string) {
	m := &messageModel{title: title, text: text}
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
	)

	// A broken terminal at this point means the message cannot be
	// shown interactively; fall back to plain stderr output.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, text)
	}
}

// messageModel is a bubbletea model for a dismiss-only message box.
type messageModel struct {
	title     string
	text      string
	dismissed bool
}

func (m *messageModel) Init() tea.Cmd { return nil }

func (m *messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.dismissed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *messageModel) View() string {
	if m.dismissed {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(m.title) + "\n")
	sb.WriteString(m.text + "\n")
	sb.WriteString(MutedStyle.Render("press any key to continue") + "\n")
	return sb.String()
}
