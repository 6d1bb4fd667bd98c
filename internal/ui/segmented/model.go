package segmented

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/segmented/internal/ui/styles"
)

// defaultHPad is the horizontal padding inside each segment cell. At least
// one column is required so dividers have a padding column to occupy.
const defaultHPad = 2

// Model is the segmented control. Construct it with New and one of the
// segment builders (Items, Repeat, FromSource); the segment set is fixed
// for the control's lifetime.
type Model struct {
	segments []Segment
	state    State
	rec      recognizer
	measured Measured
	anim     animator

	theme        *styles.Theme
	hpad         int
	posX, posY   int
	focused      bool
	placed       bool // first layout has been applied
	hasSecondary bool
}

// New creates a segmented control bound to the caller's primary selection.
func New(segments []Segment, primary Binding[int]) Model {
	return Model{
		segments: segments,
		state:    newState(len(segments), primary),
		rec:      newRecognizer(),
		anim:     newAnimator(),
		hpad:     defaultHPad,
	}
}

// SetSecondaryBinding supplies the optional secondary-selection binding.
// Without it, long-press writes are dropped.
func (m *Model) SetSecondaryBinding(b Binding[*int]) {
	m.state.secondary = b
	m.hasSecondary = true
}

// SetTheme overrides the ambient theme for this control only.
func (m *Model) SetTheme(t *styles.Theme) {
	m.theme = t
}

// SetLongPressDuration overrides the secondary-selection hold duration.
func (m *Model) SetLongPressDuration(d time.Duration) {
	if d > 0 {
		m.rec.holdFor = d
	}
}

// SetPosition tells the control where it is drawn, for pointer hit testing.
// Coordinates are the top-left cell of the outer border.
func (m *Model) SetPosition(x, y int) {
	m.posX = x
	m.posY = y
}

// SetFocused sets whether the control renders with the focused border.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused reports whether the control is focused.
func (m Model) IsFocused() bool { return m.focused }

// Count returns the number of segments.
func (m Model) Count() int { return len(m.segments) }

// Primary returns the current primary selection index.
func (m Model) Primary() int { return m.state.Primary() }

// Secondary returns the current secondary selection index, or nil.
func (m Model) Secondary() *int { return m.state.Secondary() }

// Selection exposes the selection state for rendering and tests.
func (m Model) Selection() State { return m.state }

// Init starts the initial measurement pass.
func (m Model) Init() tea.Cmd {
	return measureCmd(m.segments, m.hpad)
}

// Update handles pointer, timer, measurement and frame messages. After any
// message the indicator is re-targeted from the current state, so external
// writes through the primary binding are picked up the same way gesture
// writes are.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case LongPressMsg:
		m.applyEvents(m.rec.longPress(msg))

	case measuredMsg:
		m.measured = m.measured.Fold(len(m.segments), msg.samples)
		if !m.placed {
			// First layout: place the indicator without sliding it in
			// from zero.
			m.anim.Snap(m.targetGeometry().Offset)
			m.placed = true
		}

	case FrameMsg:
		if cmd := m.anim.Step(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.syncAnimations()...)

	return m, tea.Batch(cmds...)
}

// Cancel aborts any in-progress press, clearing transient state. Callers
// use it when focus moves away mid-gesture.
func (m *Model) Cancel() {
	m.applyEvents(m.rec.cancel())
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		i := m.hitSegment(msg.X, msg.Y)
		if i < 0 {
			return nil
		}
		evs, timer := m.rec.press(i)
		m.applyEvents(evs)
		return timer

	case msg.Action == tea.MouseActionMotion:
		m.applyEvents(m.rec.move(m.hitSegment(msg.X, msg.Y)))

	case msg.Action == tea.MouseActionRelease:
		m.applyEvents(m.rec.release(m.hitSegment(msg.X, msg.Y)))
	}
	return nil
}

func (m *Model) applyEvents(evs []Event) {
	for _, ev := range evs {
		m.state.Apply(ev)
	}
}

// syncAnimations retargets both animations from the current state. The
// offset and the scale are disjoint properties, so a selection slide and a
// press compression animate concurrently without interference.
func (m *Model) syncAnimations() []tea.Cmd {
	var cmds []tea.Cmd
	if m.placed {
		if cmd := m.anim.RetargetOffset(m.targetGeometry().Offset); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.anim.SetCompressed(m.state.Compressed()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m Model) targetGeometry() Geometry {
	return ComputeGeometry(m.measured, len(m.segments), m.state.Primary())
}

// hitSegment maps screen coordinates to a segment index, or -1 for misses.
// The border occupies one cell on every side of the content row.
func (m Model) hitSegment(x, y int) int {
	n := len(m.segments)
	segW := m.measured.SegmentWidth(n)
	if segW == 0 {
		return -1
	}
	row := y - m.posY - 1
	col := x - m.posX - 1
	if row < 0 || row >= m.contentHeight() {
		return -1
	}
	if col < 0 || col >= m.measured.TotalWidth() {
		return -1
	}
	return min(col/segW, n-1)
}

func (m Model) contentHeight() int {
	return max(m.measured.MaxSegmentHeight(), 1)
}

func (m Model) themeOrAmbient() *styles.Theme {
	if m.theme != nil {
		return m.theme
	}
	return styles.T()
}
