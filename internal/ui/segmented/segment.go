// Package segmented implements an animated segmented control: a single row
// of equal-width segments of which exactly one is the primary selection,
// marked by a sliding highlight indicator. A long-press records an optional
// secondary selection, and an in-progress press previews its segment with a
// transient highlight.
package segmented

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/segmented/internal/ui/render"
)

// Segment is one selectable unit of the control. Its content is opaque to
// the control: it is only measured for layout and painted as-is. The index
// is stable for the lifetime of the control.
type Segment struct {
	index   int
	content string
	id      string
}

// Index returns the segment's position in the control.
func (s Segment) Index() int { return s.index }

// Content returns the segment's renderable content.
func (s Segment) Content() string { return s.content }

// ID returns the caller-supplied identity, or "" for static segments.
func (s Segment) ID() string { return s.id }

// Lines returns the content split into display rows.
func (s Segment) Lines() []string {
	if s.content == "" {
		return []string{""}
	}
	return strings.Split(s.content, "\n")
}

// Source supplies dynamic segment content with per-item identity.
// The source is read exactly once, when the control is constructed;
// later changes to the underlying data require rebuilding the control.
type Source interface {
	Len() int
	Item(i int) string
	ID(i int) string
}

// Items builds segments from a fixed list of contents.
func Items(contents ...string) []Segment {
	segs := make([]Segment, len(contents))
	for i, c := range contents {
		segs[i] = Segment{index: i, content: normalize(c)}
	}
	return segs
}

// Repeat builds count segments from a single content producer.
func Repeat(count int, produce func(i int) string) []Segment {
	if count <= 0 || produce == nil {
		return nil
	}
	segs := make([]Segment, count)
	for i := range count {
		segs[i] = Segment{index: i, content: normalize(produce(i))}
	}
	return segs
}

// FromSource builds segments from a dynamic source, capturing each item's
// identity alongside its content.
func FromSource(src Source) []Segment {
	if src == nil {
		return nil
	}
	segs := make([]Segment, src.Len())
	for i := range segs {
		segs[i] = Segment{index: i, content: normalize(src.Item(i)), id: src.ID(i)}
	}
	return segs
}

// normalize strips embedded styling and control characters so segment cells
// can be repainted per selection state without fighting caller escapes.
func normalize(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = render.Sanitize(l)
	}
	return strings.Join(lines, "\n")
}
