// Package overlay paints styled column spans over a plain text row. The
// segmented control uses it to layer the indicator fill, hover preview and
// dividers under the segment labels without tracking escape sequences.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Span styles the half-open column interval [Start, End).
type Span struct {
	Start int
	End   int
	Style lipgloss.Style
}

// Paint renders line to exactly width columns. Each grapheme cluster takes
// the style of the last span covering its starting column, falling back to
// base. The input must be plain text; clusters wider than one column belong
// to the region their first column falls in.
func Paint(line string, width int, base lipgloss.Style, spans ...Span) string {
	if width <= 0 {
		return ""
	}
	line = runewidth.Truncate(line, width, "")
	if w := runewidth.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	var b strings.Builder
	var run strings.Builder
	runSpan := -2 // nothing accumulated yet

	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := base
		if runSpan >= 0 {
			style = spans[runSpan].Style
		}
		b.WriteString(style.Render(run.String()))
		run.Reset()
	}

	col := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cluster := gr.Str()
		idx := spanAt(spans, col)
		if idx != runSpan {
			flush()
			runSpan = idx
		}
		run.WriteString(cluster)
		col += runewidth.StringWidth(cluster)
	}
	flush()

	return b.String()
}

// spanAt returns the index of the last span covering col, or -1.
func spanAt(spans []Span, col int) int {
	for i := len(spans) - 1; i >= 0; i-- {
		if col >= spans[i].Start && col < spans[i].End {
			return i
		}
	}
	return -1
}
