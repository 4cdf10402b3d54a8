package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/logging/events"
	"github.com/atomicstack/navmenu/internal/nav"
	"github.com/atomicstack/navmenu/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.ctrl.Dispatch(nav.ToggleActivated{})
	case key.Matches(keyMsg, m.keys.Escape):
		m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Focus):
		m.cycleFocus()
	case key.Matches(keyMsg, m.keys.Activate):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Number):
		return m.handleNumberKey(keyMsg)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveEnd()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scrollPage(-m.viewport.Height)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scrollPage(m.viewport.Height)
	default:
		m.handleTextInput(keyMsg)
	}
	return nil
}

// handleEscapeKey forwards esc to the controller only while the listener is
// installed. Otherwise it clears the quick-jump query.
func (m *Model) handleEscapeKey() {
	if m.escapeListener {
		m.ctrl.Dispatch(nav.EscapePressed{})
		return
	}
	if m.links.ClearQuery() {
		events.Jump.Cleared()
	}
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.focus == focusToggle {
		m.ctrl.Dispatch(nav.ToggleActivated{})
		return nil
	}
	return m.activateLink(m.links.Cursor)
}

func (m *Model) handleNumberKey(msg tea.KeyMsg) tea.Cmd {
	if !m.visuallyOpen || len(msg.Runes) != 1 {
		return nil
	}
	idx := int(msg.Runes[0] - '1')
	if idx < 0 || idx >= m.links.Len() {
		return nil
	}
	return m.activateLink(idx)
}

// activateLink navigates to the link's section and lets the controller decide
// whether the menu closes as a result.
func (m *Model) activateLink(idx int) tea.Cmd {
	if !m.visuallyOpen {
		return nil
	}
	item, ok := m.links.At(idx)
	if !ok {
		return nil
	}
	if m.links.SetCursor(idx) {
		events.UI.LinkCursor(idx)
	}
	if m.links.ClearQuery() {
		events.Jump.Cleared()
	}
	m.errMsg = ""
	req := command.Request{ID: item.ID, Label: item.Label, Target: item.Target}
	cmd := m.bus.Execute(req, m.page.Section)
	m.ctrl.Dispatch(nav.LinkActivated{Index: idx})
	return cmd
}

func (m *Model) cycleFocus() {
	if m.focus == focusToggle {
		m.setFocus(focusLinks)
		return
	}
	m.setFocus(focusToggle)
}

func (m *Model) linksFocused() bool {
	return m.visuallyOpen && m.focus == focusLinks
}

func (m *Model) moveUp() {
	if !m.linksFocused() {
		m.scrollPage(-1)
		return
	}
	if m.links.MoveUp() {
		events.UI.LinkCursor(m.links.Cursor)
	}
}

func (m *Model) moveDown() {
	if !m.linksFocused() {
		m.scrollPage(1)
		return
	}
	if m.links.MoveDown() {
		events.UI.LinkCursor(m.links.Cursor)
	}
}

func (m *Model) moveHome() {
	if !m.linksFocused() {
		m.scrollPage(-m.viewport.Offset)
		return
	}
	if m.links.MoveHome() {
		events.UI.LinkCursor(m.links.Cursor)
	}
}

func (m *Model) moveEnd() {
	if !m.linksFocused() {
		m.scrollPage(m.viewport.Total)
		return
	}
	if m.links.MoveEnd() {
		events.UI.LinkCursor(m.links.Cursor)
	}
}

// scrollPage moves the page body unless the menu holds the scroll lock.
func (m *Model) scrollPage(delta int) {
	if delta == 0 {
		return
	}
	if m.scrollLocked {
		events.UI.ScrollBlocked(m.viewport.Offset)
		return
	}
	if m.viewport.ScrollBy(delta) {
		events.UI.Scroll(m.viewport.Offset)
	}
}
