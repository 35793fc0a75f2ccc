package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

// Styles maps severities to terminal colors
type Styles struct {
	OK       lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
	Info     lipgloss.Style
	Title    lipgloss.Style
	Menu     lipgloss.Style
	Prompt   lipgloss.Style
}

// NewStyles builds styles for out. Color is dropped automatically when out
// is not a terminal.
func NewStyles(out io.Writer) Styles {
	return StylesFor(lipgloss.NewRenderer(out))
}

// StylesFor builds styles on an existing renderer
func StylesFor(r *lipgloss.Renderer) Styles {
	return Styles{
		OK:       r.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Critical: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Info:     r.NewStyle().Foreground(lipgloss.Color("15")),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Menu:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

// For returns the style for a severity
func (s Styles) For(severity engine.Severity) lipgloss.Style {
	switch severity {
	case engine.SeverityOK:
		return s.OK
	case engine.SeverityWarning:
		return s.Warning
	case engine.SeverityCritical:
		return s.Critical
	default:
		return s.Info
	}
}

// StatusLine renders one status line as "Label: text"
func (s Styles) StatusLine(line engine.StatusLine) string {
	return s.For(line.Severity).Render(line.Label + ": " + line.Text)
}

// MenuLines renders the numbered menu, one option per line
func (s Styles) MenuLines(options []engine.MenuOption) []string {
	lines := make([]string, 0, len(options))
	for _, option := range options {
		lines = append(lines, s.Menu.Render(fmt.Sprintf("%d. %s", option.Choice, option.Label)))
	}
	return lines
}
