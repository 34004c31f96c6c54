package shell

import "github.com/charmbracelet/lipgloss"

// styles renders menu headings and error lines. Plain writers such as
// files and buffers get unstyled text.
type styles struct {
	title lipgloss.Style
	page  lipgloss.Style
	err   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		page:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		err:   r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}
}
