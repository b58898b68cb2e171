package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	errText lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// newStyles builds styles bound to w so colour is only emitted on terminals
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#DA702C")),
		heading: r.NewStyle().Bold(true),
		errText: r.NewStyle().Foreground(lipgloss.Color("#D14D41")),
		success: r.NewStyle().Foreground(lipgloss.Color("#879A39")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#878580")),
	}
}
