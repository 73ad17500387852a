package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles is bound to one output so colour is dropped when it is not a terminal.
type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	muted     lipgloss.Style
	success   lipgloss.Style
	err       lipgloss.Style
	highlight lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		heading:   r.NewStyle().Bold(true).Underline(true),
		label:     r.NewStyle().Foreground(lipgloss.Color("8")),
		muted:     r.NewStyle().Faint(true),
		success:   r.NewStyle().Foreground(lipgloss.Color("10")),
		err:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		highlight: r.NewStyle().Reverse(true),
	}
}

func (s styles) errorLine(msg string) string {
	return s.err.Render("error:") + " " + msg
}

func (s styles) ok(msg string) string {
	return s.success.Render("✓") + " " + msg
}
