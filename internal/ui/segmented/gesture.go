package segmented

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLongPress is the hold duration after which a press records the
// secondary selection.
const DefaultLongPress = 700 * time.Millisecond

// LongPressMsg is delivered when a press has been held long enough. The
// generation ties it to one press cycle so a timer that outlives its press
// is ignored.
type LongPressMsg struct {
	Gen int
}

// recognizer turns raw pointer samples into selection events. Tap, drag and
// long-press recognition run simultaneously over one press-release cycle:
// drag events keep firing while the long-press timer is pending, and a
// short press yields both a drag end and a tap. Only the tap is suppressed
// once the long-press has fired.
type recognizer struct {
	pressed     bool
	origin      int // segment the press started on
	gen         int // press generation; bumping it invalidates pending timers
	longPressed bool
	holdFor     time.Duration
}

func newRecognizer() recognizer {
	return recognizer{holdFor: DefaultLongPress}
}

// press starts a press cycle on segment i. It fires the initial drag change
// and schedules the long-press timer for this generation.
func (r *recognizer) press(i int) ([]Event, tea.Cmd) {
	r.pressed = true
	r.origin = i
	r.longPressed = false
	r.gen++

	gen := r.gen
	timer := tea.Tick(r.holdFor, func(time.Time) tea.Msg {
		return LongPressMsg{Gen: gen}
	})
	return []Event{DragChangedEvent{Index: i}}, timer
}

// move reports pointer motion over segment i (-1 when off the control).
// Drag changes only fire while the pointer remains over the origin segment.
func (r *recognizer) move(i int) []Event {
	if !r.pressed || i != r.origin {
		return nil
	}
	return []Event{DragChangedEvent{Index: r.origin}}
}

// release ends the press cycle over segment i (-1 when off the control).
// The drag end always fires; the tap fires only when the release lands on
// the origin segment and no long-press completed during the cycle.
func (r *recognizer) release(i int) []Event {
	if !r.pressed {
		return nil
	}
	r.pressed = false
	r.gen++

	evs := []Event{DragEndedEvent{}}
	if i == r.origin && !r.longPressed {
		evs = append(evs, TapEvent{Index: r.origin})
	}
	return evs
}

// cancel ends the press cycle without a tap.
func (r *recognizer) cancel() []Event {
	if !r.pressed {
		return nil
	}
	r.pressed = false
	r.gen++
	return []Event{DragEndedEvent{}}
}

// longPress handles a fired hold timer. Stale generations are dropped.
func (r *recognizer) longPress(msg LongPressMsg) []Event {
	if !r.pressed || msg.Gen != r.gen {
		return nil
	}
	r.longPressed = true
	return []Event{LongPressEvent{Index: r.origin}}
}
