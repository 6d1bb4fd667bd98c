package styles

import "github.com/charmbracelet/lipgloss"

// ContainerStyle returns the control's outer rounded border, colored for
// the focus state of the current theme.
func (t *Theme) ContainerStyle(focused bool) lipgloss.Style {
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
