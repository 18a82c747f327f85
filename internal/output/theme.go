package output

import "github.com/charmbracelet/lipgloss"

// Minimal styling. The default renderer degrades to plain text when stdout
// is not a terminal, so piped and tested output stays byte-stable.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)
