package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
}

// NewStyles builds the styles on lr, so color output follows its profile.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Key:     lr.NewStyle().Bold(true),
	}
}

// FormatHeader returns a markdown heading.
func FormatHeader(level int, title string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + title
}

// FormatKeyValue returns a markdown list item with a bold key.
func FormatKeyValue(key string, value any) string {
	return fmt.Sprintf("- **%s**: %v", key, value)
}
