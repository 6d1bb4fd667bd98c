package segmented

// Event is a selection-affecting occurrence produced by the gesture
// recognizer and consumed by the state reducer. Keeping the producers and
// the reducer separate means any interleaving of tap, drag and long-press
// events for one press-release cycle converges to the same final state:
// transient resets are idempotent and index writes never touch transient
// fields.
type Event interface {
	isEvent()
}

// TapEvent completes a tap on a segment. The only gesture mutator of the
// primary selection.
type TapEvent struct {
	Index int
}

// DragChangedEvent fires on press-down and on every pointer move while the
// press remains over its origin segment.
type DragChangedEvent struct {
	Index int
}

// DragEndedEvent fires on release or cancel and clears transient state.
type DragEndedEvent struct{}

// LongPressEvent completes a sustained press and records the secondary
// selection.
type LongPressEvent struct {
	Index int
}

func (TapEvent) isEvent()         {}
func (DragChangedEvent) isEvent() {}
func (DragEndedEvent) isEvent()   {}
func (LongPressEvent) isEvent()   {}

// State holds the control's selection state. The primary and secondary
// indices live behind caller-supplied bindings; the highlighted index and
// the compressed flag are transient and local, reset whenever the active
// gesture ends.
type State struct {
	count     int
	primary   Binding[int]
	secondary Binding[*int]

	highlighted *int
	compressed  bool
}

func newState(count int, primary Binding[int]) State {
	return State{
		count:     count,
		primary:   primary,
		secondary: Discard[*int](),
	}
}

// Apply folds one event into the state.
func (s *State) Apply(ev Event) {
	switch ev := ev.(type) {
	case TapEvent:
		s.primary.Set(ev.Index)

	case DragChangedEvent:
		// Press feedback only triggers on the already-selected segment.
		if ev.Index == s.Primary() {
			s.compressed = true
		}
		idx := ev.Index
		s.highlighted = &idx

	case DragEndedEvent:
		s.compressed = false
		s.highlighted = nil

	case LongPressEvent:
		s.compressed = false
		s.highlighted = nil
		idx := ev.Index
		s.secondary.Set(&idx)
	}
}

// Count returns the number of segments.
func (s State) Count() int { return s.count }

// Primary returns the primary selection index, clamped to valid bounds.
// The caller's out-of-range values are clamped on read, never written back.
func (s State) Primary() int {
	if s.count == 0 {
		return 0
	}
	return clamp(s.primary.Get(), s.count-1)
}

// Secondary returns the secondary selection index, or nil when unset or out
// of range.
func (s State) Secondary() *int {
	v := s.secondary.Get()
	if v == nil || *v < 0 || *v >= s.count {
		return nil
	}
	return v
}

// Highlighted returns the transient pointer-preview index, or nil.
func (s State) Highlighted() *int { return s.highlighted }

// Compressed reports whether the press-down scale feedback is active.
func (s State) Compressed() bool { return s.compressed }

// IsPrimary reports whether segment i is the primary selection.
func (s State) IsPrimary(i int) bool {
	return s.count > 0 && i == s.Primary()
}

// IsHighlighted reports whether segment i is under an in-progress press.
func (s State) IsHighlighted(i int) bool {
	return s.highlighted != nil && *s.highlighted == i
}

// IsSecondary reports whether segment i is the secondary selection.
func (s State) IsSecondary(i int) bool {
	sec := s.Secondary()
	return sec != nil && *sec == i
}

// ShowDividerAfter reports whether a divider should follow segment i.
// Dividers adjacent to the primary selection are suppressed so the sliding
// indicator absorbs the boundary.
func (s State) ShowDividerAfter(i int) bool {
	if i < 0 || i >= s.count-1 {
		return false
	}
	return !s.IsPrimary(i) && !s.IsPrimary(i+1)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
