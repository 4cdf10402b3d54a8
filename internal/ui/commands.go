package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/logging"
	"github.com/atomicstack/navmenu/internal/ui/command"
)

// handleNavigationResultMsg moves the page to the resolved section. Link
// navigation is not user scrolling, so the scroll lock does not apply.
func (m *Model) handleNavigationResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	m.viewport.ScrollTo(result.Line)
	m.setInfo(fmt.Sprintf("Navigated to %s", result.Label))
	return nil
}
