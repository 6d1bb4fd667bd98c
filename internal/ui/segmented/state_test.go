package segmented

import "testing"

func newTestState(count int, primary *int) State {
	return newState(count, Bind(primary))
}

func TestTapSetsPrimary(t *testing.T) {
	primary := 0
	s := newTestState(3, &primary)

	s.Apply(TapEvent{Index: 2})

	if primary != 2 {
		t.Errorf("primary = %d, want 2", primary)
	}
	if !s.IsPrimary(2) {
		t.Error("expected IsPrimary(2)")
	}
}

func TestTapDuringDragOnOtherSegment(t *testing.T) {
	primary := 0
	s := newTestState(3, &primary)

	// Drag activity on segment 1 must not disturb a tap on segment 2.
	s.Apply(DragChangedEvent{Index: 1})
	s.Apply(TapEvent{Index: 2})
	s.Apply(DragEndedEvent{})

	if primary != 2 {
		t.Errorf("primary = %d, want 2", primary)
	}
}

func TestDragCompressesOnlySelectedSegment(t *testing.T) {
	primary := 1
	s := newTestState(3, &primary)

	s.Apply(DragChangedEvent{Index: 0})
	if s.Compressed() {
		t.Error("drag on unselected segment should not compress")
	}
	if !s.IsHighlighted(0) {
		t.Error("expected highlight on dragged segment")
	}

	s.Apply(DragEndedEvent{})
	s.Apply(DragChangedEvent{Index: 1})
	if !s.Compressed() {
		t.Error("drag on selected segment should compress")
	}
}

func TestDragEndClearsTransients(t *testing.T) {
	primary := 0
	s := newTestState(3, &primary)

	s.Apply(DragChangedEvent{Index: 0})
	s.Apply(DragEndedEvent{})

	if s.Highlighted() != nil {
		t.Error("highlighted should be nil after drag end")
	}
	if s.Compressed() {
		t.Error("compressed should be false after drag end")
	}
}

func TestLongPressSetsSecondaryKeepsPrimary(t *testing.T) {
	primary := 2
	var secondary *int
	s := newTestState(3, &primary)
	s.secondary = Bind(&secondary)

	s.Apply(DragChangedEvent{Index: 0})
	s.Apply(LongPressEvent{Index: 0})

	if secondary == nil || *secondary != 0 {
		t.Errorf("secondary = %v, want 0", secondary)
	}
	if primary != 2 {
		t.Errorf("primary = %d, want 2 (unchanged)", primary)
	}
	if s.Highlighted() != nil || s.Compressed() {
		t.Error("long press must clear transient state")
	}
}

func TestSecondaryWritesDroppedWithoutBinding(t *testing.T) {
	primary := 0
	s := newTestState(3, &primary)

	s.Apply(LongPressEvent{Index: 1})

	if s.Secondary() != nil {
		t.Error("secondary should stay nil with the discard binding")
	}
}

// Tap and drag-end fire for the same physical press-release; the final
// state must not depend on their order.
func TestTapDragEndOrderIndependent(t *testing.T) {
	for name, evs := range map[string][]Event{
		"drag end first": {DragChangedEvent{Index: 1}, DragEndedEvent{}, TapEvent{Index: 1}},
		"tap first":      {DragChangedEvent{Index: 1}, TapEvent{Index: 1}, DragEndedEvent{}},
	} {
		primary := 0
		s := newTestState(3, &primary)
		for _, ev := range evs {
			s.Apply(ev)
		}
		if primary != 1 {
			t.Errorf("%s: primary = %d, want 1", name, primary)
		}
		if s.Highlighted() != nil || s.Compressed() {
			t.Errorf("%s: transient state leaked", name)
		}
	}
}

func TestDividerSuppression(t *testing.T) {
	primary := 1
	s := newTestState(4, &primary)

	// Suppressed on both sides of the primary selection, and never after
	// the last segment.
	cases := []struct {
		after int
		want  bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, false},
	}
	for _, tc := range cases {
		if got := s.ShowDividerAfter(tc.after); got != tc.want {
			t.Errorf("ShowDividerAfter(%d) = %v, want %v", tc.after, got, tc.want)
		}
	}
}

func TestPrimaryClampsOutOfRangeBinding(t *testing.T) {
	primary := 99
	s := newTestState(3, &primary)

	if got := s.Primary(); got != 2 {
		t.Errorf("Primary() = %d, want 2 (clamped)", got)
	}
	if primary != 99 {
		t.Error("clamping must not write back through the binding")
	}

	primary = -5
	if got := s.Primary(); got != 0 {
		t.Errorf("Primary() = %d, want 0 (clamped)", got)
	}
}

func TestEmptyControlSafety(t *testing.T) {
	primary := 0
	s := newTestState(0, &primary)

	if s.IsPrimary(0) {
		t.Error("no segment can be primary in an empty control")
	}
	if s.ShowDividerAfter(0) {
		t.Error("no dividers in an empty control")
	}
	s.Apply(TapEvent{Index: 0}) // must not panic
}

func TestSecondaryOutOfRangeReadsNil(t *testing.T) {
	primary := 0
	bad := 7
	var secondary *int = &bad
	s := newTestState(3, &primary)
	s.secondary = Bind(&secondary)

	if s.Secondary() != nil {
		t.Error("out-of-range secondary should read as nil")
	}
}
