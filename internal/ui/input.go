package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/logging/events"
)

// handleTextInput feeds the quick-jump query while the link list has focus.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if !m.linksFocused() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		if !printable(text) {
			return false
		}
		match := m.links.AppendQuery(text)
		events.Jump.Query(m.links.Query, match)
		return true
	case tea.KeyBackspace:
		if !m.links.TrimQuery() {
			return false
		}
		if m.links.Query == "" {
			events.Jump.Cleared()
		} else {
			events.Jump.Query(m.links.Query, m.links.Cursor)
		}
		return true
	case tea.KeyCtrlU:
		if !m.links.ClearQuery() {
			return false
		}
		events.Jump.Cleared()
		return true
	}
	return false
}

func printable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
