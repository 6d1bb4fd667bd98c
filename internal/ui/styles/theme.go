// Package styles defines the ambient color configuration consumed by the
// segmented control and the demo application.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the control.
type Theme struct {
	// Indicator fill. HighlightSoft is the second gradient stop.
	Highlight     lipgloss.Color
	HighlightSoft lipgloss.Color

	// Control background and the transient press-preview background.
	Background lipgloss.Color
	Hover      lipgloss.Color

	// Text hierarchy
	FgBase     lipgloss.Color // segment labels
	FgMuted    lipgloss.Color // hints, status
	FgSelected lipgloss.Color // label on top of the indicator

	// Chrome
	Border      lipgloss.Color // unfocused container border
	BorderFocus lipgloss.Color // focused container border
	Divider     lipgloss.Color // inter-segment dividers
	Secondary   lipgloss.Color // secondary-selection marker

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the control's parts.
type Styles struct {
	Label         lipgloss.Style // resting segment label
	SelectedLabel lipgloss.Style // label inside the indicator
	Hovered       lipgloss.Style // label under an in-progress press
	Muted         lipgloss.Style
	Divider       lipgloss.Style
	SecondaryMark lipgloss.Style
}

var defaultTheme = Theme{
	Highlight:     lipgloss.Color("#a78bfa"),
	HighlightSoft: lipgloss.Color("#7c5ce0"),

	Background: lipgloss.Color("#1a1a1a"),
	Hover:      lipgloss.Color("#303030"),

	FgBase:     lipgloss.Color("#c0c0c0"),
	FgMuted:    lipgloss.Color("#808080"),
	FgSelected: lipgloss.Color("#101010"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),
	Divider:     lipgloss.Color("#585858"),
	Secondary:   lipgloss.Color("#f1a208"),
}

var current = &defaultTheme

// T returns the ambient theme.
func T() *Theme {
	return current
}

// Override installs t as the ambient theme and returns a func that restores
// the previous one. Scope the override with defer:
//
//	restore := styles.Override(theme)
//	defer restore()
func Override(t Theme) (restore func()) {
	prev := current
	scoped := t
	scoped.styles = nil // drop any cache copied from another theme
	current = &scoped
	return func() { current = prev }
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Background),
		SelectedLabel: lipgloss.NewStyle().
			Foreground(t.FgSelected).
			Bold(true),
		Hovered: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Hover),
		Muted: lipgloss.NewStyle().Foreground(t.FgMuted),
		Divider: lipgloss.NewStyle().
			Foreground(t.Divider).
			Background(t.Background),
		SecondaryMark: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
	}
}
