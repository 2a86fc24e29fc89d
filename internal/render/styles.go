package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status glyph and marker styles. These are package-level vars that get
// rebuilt when the embedding application changes theme.
var (
	SuccessStyle   lipgloss.Style
	FailedStyle    lipgloss.Style
	RunningStyle   lipgloss.Style
	CancelledStyle lipgloss.Style
	BookmarkStyle  lipgloss.Style
	BorderStyle    lipgloss.Style
)

func init() {
	RebuildStyles()
}

// RebuildStyles recreates all render styles from current color values.
// On non-TTY output (pipes, files, tests) termenv reports Ascii and the
// styles degrade to plain text, keeping rendered output deterministic.
func RebuildStyles() {
	if termenv.EnvColorProfile() == termenv.Ascii {
		SuccessStyle = lipgloss.NewStyle()
		FailedStyle = lipgloss.NewStyle()
		RunningStyle = lipgloss.NewStyle()
		CancelledStyle = lipgloss.NewStyle()
		BookmarkStyle = lipgloss.NewStyle()
		BorderStyle = lipgloss.NewStyle()
		return
	}

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	FailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	RunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	CancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	BookmarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}
