package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// BlendCells returns n colors blended from one stop to the other, one per
// display column. Blending happens in HCL space for perceptually uniform
// transitions; the indicator uses this for its horizontal fill.
func BlendCells(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	c1, _ := colorful.MakeColor(parseColor(from))
	c2, _ := colorful.MakeColor(parseColor(to))

	cells := make([]lipgloss.Color, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		cells[i] = lipgloss.Color(c1.BlendHcl(c2, t).Hex())
	}
	return cells
}

// ApplyGradient renders text with a horizontal foreground gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := BlendCells(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(cluster))
	}
	return b.String()
}

// parseColor converts a lipgloss hex color to a color.Color, falling back
// to neutral gray for ANSI palette values.
func parseColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
