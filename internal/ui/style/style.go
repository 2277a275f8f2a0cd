// Package style provides shared colors, icons and text styles of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Text styles of the run summary.
var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Passed  = lipgloss.NewStyle().Foreground(Green)
	Failed  = lipgloss.NewStyle().Foreground(Red)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
	Summary = lipgloss.NewStyle().Bold(true)
)
