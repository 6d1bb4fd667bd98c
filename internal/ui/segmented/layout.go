package segmented

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Measured is the layout fold fed by per-segment content measurement. It is
// max-only: values never shrink, so repeated measurement passes converge to
// a stable fixed point instead of oscillating.
type Measured struct {
	maxSegmentHeight int
	totalWidth       int
}

// Sample is one segment's measured content box, in cells.
type Sample struct {
	Width  int
	Height int
}

// Fold merges measurement samples into the running maxima. totalWidth is
// the widest single segment times the segment count, since all segments
// share one width.
func (m Measured) Fold(count int, samples []Sample) Measured {
	for _, s := range samples {
		m.maxSegmentHeight = max(m.maxSegmentHeight, s.Height)
		m.totalWidth = max(m.totalWidth, s.Width*count)
	}
	return m
}

// MaxSegmentHeight returns the tallest observed segment content, in rows.
func (m Measured) MaxSegmentHeight() int { return m.maxSegmentHeight }

// TotalWidth returns the row's content width, in columns.
func (m Measured) TotalWidth() int { return m.totalWidth }

// SegmentWidth returns the equal per-segment width, guarding the empty
// control.
func (m Measured) SegmentWidth(count int) int {
	if count == 0 {
		return 0
	}
	return m.totalWidth / count
}

// measuredMsg carries a completed measurement pass back into Update. The
// fold is applied there rather than in the render path: View is read-only,
// and committing on the next message keeps measurement and mutation in
// separate phases.
type measuredMsg struct {
	samples []Sample
}

// measureCmd measures segment contents. hpad is the horizontal padding
// added inside each cell, counted on both sides.
func measureCmd(segments []Segment, hpad int) tea.Cmd {
	if len(segments) == 0 {
		return nil
	}
	return func() tea.Msg {
		samples := make([]Sample, len(segments))
		for i, seg := range segments {
			c := seg.Content()
			samples[i] = Sample{
				Width:  lipgloss.Width(c) + 2*hpad,
				Height: lipgloss.Height(c),
			}
		}
		return measuredMsg{samples: samples}
	}
}
