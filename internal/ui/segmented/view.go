package segmented

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/segmented/internal/ui/overlay"
	"github.com/llehouerou/segmented/internal/ui/render"
	"github.com/llehouerou/segmented/internal/ui/styles"
)

// View renders the control: a rounded container holding the equal-width
// segment row with the indicator painted underneath the labels. Before the
// first measurement arrives the control renders as an empty shell and fills
// in once the measured message commits.
func (m Model) View() string {
	th := m.themeOrAmbient()
	container := th.ContainerStyle(m.focused)

	n := len(m.segments)
	innerW := m.measured.TotalWidth()
	if n == 0 || innerW == 0 {
		return container.Render("")
	}

	h := m.contentHeight()
	rows := make([]string, 0, h+1)
	for r := range h {
		rows = append(rows, m.paintRow(r, h, th))
	}
	if m.hasSecondary {
		rows = append(rows, m.markerRow(th))
	}

	return container.Render(strings.Join(rows, "\n"))
}

func (m Model) paintRow(row, height int, th *styles.Theme) string {
	n := len(m.segments)
	segW := m.measured.SegmentWidth(n)
	innerW := m.measured.TotalWidth()

	cells := make([]string, n)
	for i, seg := range m.segments {
		cells[i] = render.Center(cellLine(seg, row, height), segW)
	}

	var spans []overlay.Span

	// Transient press preview, painted first so the indicator wins where
	// they overlap.
	if hi := m.state.Highlighted(); hi != nil && *hi >= 0 && *hi < n {
		spans = append(spans, overlay.Span{
			Start: *hi * segW,
			End:   (*hi + 1) * segW,
			Style: th.S().Hovered,
		})
	}

	// Dividers replace the rightmost padding column of their cell, which is
	// why hpad must be at least one.
	for i := range n - 1 {
		if !m.state.ShowDividerAfter(i) {
			continue
		}
		cells[i] = trimLastColumn(cells[i]) + "│"
		spans = append(spans, overlay.Span{
			Start: (i+1)*segW - 1,
			End:   (i + 1) * segW,
			Style: th.S().Divider,
		})
	}

	if m.indicatorCoversRow(row, height) {
		spans = append(spans, m.indicatorSpans(th, innerW)...)
	}

	return overlay.Paint(strings.Join(cells, ""), innerW, th.S().Label, spans...)
}

// indicatorCoversRow applies the indicator's vertical inset. The reference
// geometry insets the height by two units; at cell resolution that inset
// only exists once the content is at least three rows tall.
func (m Model) indicatorCoversRow(row, height int) bool {
	if height < 3 {
		return true
	}
	return row >= 1 && row < height-1
}

// indicatorSpans paints the indicator's current animated interval, one
// column per span so the fill blends from Highlight to HighlightSoft.
func (m Model) indicatorSpans(th *styles.Theme, innerW int) []overlay.Span {
	n := len(m.segments)
	w := float64(innerW) / float64(n)

	// Compression scales the width around the center anchor.
	scaledW := int(math.Round(w * m.anim.Scale()))
	if scaledW <= 0 {
		return nil
	}
	left := -m.anim.Offset() + (w-float64(scaledW))/2

	a := max(int(math.Round(left)), 0)
	b := min(a+scaledW, innerW)
	if a >= b {
		return nil
	}

	colors := styles.BlendCells(b-a, th.Highlight, th.HighlightSoft)
	labelFg := th.S().SelectedLabel

	spans := make([]overlay.Span, 0, b-a)
	for c := a; c < b; c++ {
		spans = append(spans, overlay.Span{
			Start: c,
			End:   c + 1,
			Style: labelFg.Background(colors[c-a]),
		})
	}
	return spans
}

// markerRow renders the secondary-selection accent line under the segment
// row. It is always present once a secondary binding is supplied, so the
// control's height does not jump when the selection is made.
func (m Model) markerRow(th *styles.Theme) string {
	n := len(m.segments)
	segW := m.measured.SegmentWidth(n)
	innerW := m.measured.TotalWidth()

	sec := m.state.Secondary()
	if sec == nil {
		return overlay.Paint("", innerW, th.S().Label)
	}

	markW := min(max(segW-2*m.hpad, 1), 4)
	line := strings.Repeat(" ", *sec*segW) + render.Center(strings.Repeat("─", markW), segW)

	return overlay.Paint(line, innerW, th.S().Label, overlay.Span{
		Start: *sec * segW,
		End:   (*sec + 1) * segW,
		Style: th.S().SecondaryMark,
	})
}

// cellLine returns the content line for a display row, centering short
// contents vertically.
func cellLine(seg Segment, row, height int) string {
	lines := seg.Lines()
	top := (height - len(lines)) / 2
	idx := row - top
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

// trimLastColumn drops the final display column of a plain cell string.
func trimLastColumn(s string) string {
	w := runewidth.StringWidth(s)
	if w == 0 {
		return s
	}
	return runewidth.Truncate(s, w-1, "")
}
