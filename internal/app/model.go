// Package app is the demo application: three segmented controls, one per
// construction shape, with keyboard and pointer driving of the bindings.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/llehouerou/segmented/internal/config"
	"github.com/llehouerou/segmented/internal/ui/segmented"
)

type focusArea int

const (
	focusTabs focusArea = iota
	focusChannels
	focusFilters
	focusInput
	focusAreas
)

// selections holds the demo's bound state. It lives behind a pointer so
// the bindings stay valid across model copies.
type selections struct {
	tab     int
	channel int
	filter  int

	tabSecondary    *int
	filterSecondary *int
}

// Model is the demo application model.
type Model struct {
	cfg *config.Config
	sel *selections

	tabs     segmented.Model // fixed item list
	channels segmented.Model // homogeneous producer
	filters  segmented.Model // dynamic source

	input textinput.Model
	focus focusArea

	width, height int
}

// filterSource feeds the third control, exercising the dynamic-source
// construction shape with per-item identity.
type filterSource struct {
	names []string
	ids   []string
}

func (s filterSource) Len() int          { return len(s.names) }
func (s filterSource) Item(i int) string { return s.names[i] }
func (s filterSource) ID(i int) string   { return s.ids[i] }

func New(cfg *config.Config) Model {
	sel := &selections{}

	tabs := segmented.New(segmented.Items(cfg.Tabs()...), segmented.Bind(&sel.tab))
	tabs.SetSecondaryBinding(segmented.Bind(&sel.tabSecondary))
	tabs.SetLongPressDuration(cfg.LongPress())
	tabs.SetFocused(true)

	channels := segmented.New(
		segmented.Repeat(5, func(i int) string { return fmt.Sprintf("Ch %d", i+1) }),
		segmented.Bind(&sel.channel),
	)
	channels.SetLongPressDuration(cfg.LongPress())

	src := filterSource{
		names: []string{"All", "Unread", "Starred"},
		ids:   []string{"all", "unread", "starred"},
	}
	filters := segmented.New(segmented.FromSource(src), segmented.Bind(&sel.filter))
	filters.SetSecondaryBinding(segmented.Bind(&sel.filterSecondary))
	filters.SetLongPressDuration(cfg.LongPress())

	input := textinput.New()
	input.Placeholder = "segment index"
	input.CharLimit = 3
	input.Width = 14

	return Model{
		cfg:      cfg,
		sel:      sel,
		tabs:     tabs,
		channels: channels,
		filters:  filters,
		input:    input,
	}
}

// focused returns the currently focused control, or nil when the index
// input has focus.
func (m *Model) focused() *segmented.Model {
	switch m.focus {
	case focusTabs:
		return &m.tabs
	case focusChannels:
		return &m.channels
	case focusFilters:
		return &m.filters
	default:
		return nil
	}
}

// binding returns the primary selection pointer for the focused control.
func (m *Model) binding() *int {
	switch m.focus {
	case focusTabs:
		return &m.sel.tab
	case focusChannels:
		return &m.sel.channel
	case focusFilters:
		return &m.sel.filter
	default:
		return nil
	}
}
