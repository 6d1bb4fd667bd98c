package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tabs.Init(), m.channels.Init(), m.filters.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.place()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Controls hit-test by position, so the message can fan out.
		m.place()
	}

	return m, m.routeToControls(msg)
}

// routeToControls fans a message out to every control. Measurement, frame
// and long-press messages are only meaningful to their owning control,
// which filters by press state and timer generation.
func (m *Model) routeToControls(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.tabs, cmd = m.tabs.Update(msg)
	cmds = append(cmds, cmd)
	m.channels, cmd = m.channels.Update(msg)
	cmds = append(cmds, cmd)
	m.filters, cmd = m.filters.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus()

	case "left", "h":
		// External binding write: the control picks it up on the next
		// message without being told.
		if p := m.binding(); p != nil && *p > 0 {
			*p--
		}

	case "right", "l":
		if p, c := m.binding(), m.focused(); p != nil && *p < c.Count()-1 {
			*p++
		}

	case "s":
		if c := m.focused(); c != nil {
			idx := c.Primary()
			switch m.focus {
			case focusTabs:
				m.sel.tabSecondary = &idx
			case focusFilters:
				m.sel.filterSecondary = &idx
			}
		}

	case "S":
		switch m.focus {
		case focusTabs:
			m.sel.tabSecondary = nil
		case focusFilters:
			m.sel.filterSecondary = nil
		}
	}

	// Selection keys change bound state only; pump a no-op message through
	// the controls so they re-read their bindings and animate.
	return m, m.routeToControls(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "tab":
		m.input.Blur()
		m.cycleFocus()
		return m, m.routeToControls(msg)

	case "enter":
		if idx, err := strconv.Atoi(m.input.Value()); err == nil {
			m.sel.tab = idx // clamped by the control on read
		}
		m.input.SetValue("")
		return m, m.routeToControls(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) cycleFocus() {
	if c := m.focused(); c != nil {
		c.Cancel()
		c.SetFocused(false)
	}

	m.focus = (m.focus + 1) % focusAreas

	if m.focus == focusInput {
		m.input.Focus()
	} else {
		m.focused().SetFocused(true)
	}
}

// place tells each control where it is drawn so pointer hit testing works.
// Offsets mirror the view layout: title, blank, then the stacked controls
// each followed by a blank line.
func (m *Model) place() {
	y := 2
	m.tabs.SetPosition(0, y)
	y += lipgloss.Height(m.tabs.View()) + 1
	m.channels.SetPosition(0, y)
	y += lipgloss.Height(m.channels.View()) + 1
	m.filters.SetPosition(0, y)
}
