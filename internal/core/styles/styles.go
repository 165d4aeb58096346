package styles

import "github.com/charmbracelet/lipgloss"

// Styles are bound to one renderer so color output follows the writer they
// render for rather than the process stdout.
type Styles struct {
	Block  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Error  lipgloss.Style
}

// New builds the presenter styles for palette p on renderer r.
func New(r *lipgloss.Renderer, p Palette) Styles {
	return Styles{
		Block: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),
		Header: r.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Body: r.NewStyle().
			Foreground(p.Foreground),
		Error: r.NewStyle().
			Foreground(p.Error).
			Bold(true),
	}
}
