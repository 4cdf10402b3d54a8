package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/backend"
	"github.com/atomicstack/navmenu/internal/logging/events"
	"github.com/atomicstack/navmenu/internal/menu"
)

func waitForLinksEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return linksDoneMsg{}
		}
		return linksEventMsg{event: evt}
	}
}

type linksEventMsg struct {
	event backend.Event
}

type linksDoneMsg struct{}

func (m *Model) handleLinksEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(linksEventMsg)
	if !ok {
		return nil
	}
	m.applyLinksEvent(eventMsg.event)
	if m.backend != nil {
		return waitForLinksEvent(m.backend)
	}
	return nil
}

func (m *Model) handleLinksDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyLinksEvent swaps in a reloaded link list. A failed reload keeps the
// previous links on screen and reports the error.
func (m *Model) applyLinksEvent(evt backend.Event) {
	if evt.Err != nil {
		events.Links.Error(evt.Path, evt.Err)
		m.errMsg = fmt.Sprintf("links: %v", evt.Err)
		return
	}
	m.errMsg = ""
	m.links.Replace(evt.Items)
	m.page = menu.BuildPage(evt.Items)
	m.syncViewport()
	if m.links.Len() == 0 {
		m.setFocus(focusToggle)
	}
	events.Links.Reload(evt.Path, len(evt.Items))
	m.setInfo(fmt.Sprintf("Reloaded %d links", len(evt.Items)))
}
