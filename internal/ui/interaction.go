package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	envNoInteraction = "NO_INTERACTION"
	envCI            = "CI"
	envTerm          = "TERM"
)

// ConfigureInteraction detects whether the terminal can run interactive
// prompts and sets the lipgloss color profile accordingly. It must be
// called once at startup, before any view is shown.
func ConfigureInteraction() bool {
	interactive := detectInteractiveMode()
	if interactive {
		lipgloss.SetColorProfile(termenv.ColorProfile())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return interactive
}

// RequireInteraction returns an error when the terminal cannot run
// interactive prompts. The wizard is dialog-driven end to end, so this
// is a fatal startup condition rather than something to degrade around.
func RequireInteraction() error {
	if ConfigureInteraction() {
		return nil
	}
	return fmt.Errorf("interactive terminal required (stdin/stderr is not a tty)")
}

func detectInteractiveMode() bool {
	if envTruthy(envNoInteraction) || envTruthy(envCI) {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envTerm)), "dumb") {
		return false
	}
	return stderrIsTerminal()
}

func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func envTruthy(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
