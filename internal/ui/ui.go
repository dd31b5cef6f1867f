package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned by every view when the user backs out
// (esc or ctrl+c) instead of submitting a value. Callers must treat a
// value and a cancellation as mutually exclusive outcomes.
var ErrCancelled = errors.New("cancelled by user")

// Palette — muted, dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	dim    = lipgloss.Color("243")
)

// Base styles available for direct use.
var (
	AccentStyle  = lipgloss.NewStyle().Foreground(purple)
	SuccessStyle = lipgloss.NewStyle().Foreground(green)
	ErrorStyle   = lipgloss.NewStyle().Foreground(red)
	MutedStyle   = lipgloss.NewStyle().Foreground(dim)
	TitleStyle   = lipgloss.NewStyle().Foreground(red).Bold(true)
)

// SuccessMsg renders a single-line success message.
func SuccessMsg(format string, a ...any) string {
	return SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

// ErrorMsg renders a single-line error message.
func ErrorMsg(format string, a ...any) string {
	return ErrorStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}
