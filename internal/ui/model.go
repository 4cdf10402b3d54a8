package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/backend"
	"github.com/atomicstack/navmenu/internal/logging/events"
	"github.com/atomicstack/navmenu/internal/menu"
	"github.com/atomicstack/navmenu/internal/nav"
	"github.com/atomicstack/navmenu/internal/theme"
	"github.com/atomicstack/navmenu/internal/ui/command"
	uistate "github.com/atomicstack/navmenu/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type focusTarget int

const (
	focusToggle focusTarget = iota
	focusLinks
)

func (f focusTarget) String() string {
	if f == focusLinks {
		return "links"
	}
	return "toggle"
}

// Model implements the Bubble Tea model for the navigation menu and acts as
// the presentation surface for the menu controller.
type Model struct {
	ctrl  *nav.Controller
	sched *teaScheduler

	links    *uistate.List
	page     menu.Page
	viewport uistate.Viewport
	focus    focusTarget

	visuallyOpen   bool
	expanded       bool
	scrollLocked   bool
	escapeListener bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	backend *backend.Watcher
	bus     *command.Bus
	keys    keyMap
	help    help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the given links. An empty link list falls
// back to menu.DefaultItems.
func NewModel(items []menu.Item, width, height int, showFooter bool, dwell time.Duration, watcher *backend.Watcher) *Model {
	if len(items) == 0 {
		items = menu.DefaultItems()
	}
	m := &Model{
		sched:      newTeaScheduler(),
		links:      uistate.NewList(items),
		page:       menu.BuildPage(items),
		showFooter: showFooter,
		backend:    watcher,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.ctrl = nav.NewController(m, m.sched, nav.WithDwell(dwell))
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := m.sched.drain()
	if m.backend != nil {
		cmds = append(cmds, waitForLinksEvent(m.backend))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(timerFiredMsg{}):     m.handleTimerFiredMsg,
		reflect.TypeOf(command.Result{}):    m.handleNavigationResultMsg,
		reflect.TypeOf(linksEventMsg{}):     m.handleLinksEventMsg,
		reflect.TypeOf(linksDoneMsg{}):      m.handleLinksDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate attaches the ticks for any timer the controller scheduled
// while handling the message.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.sched.drain()...)
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleTimerFiredMsg(msg tea.Msg) tea.Cmd {
	fired, ok := msg.(timerFiredMsg)
	if !ok {
		return nil
	}
	if !m.sched.fire(fired.id) {
		events.Nav.TimerStale(uint64(fired.id), uint64(m.ctrl.Pending()))
	}
	return nil
}

// State reports the controller's current menu state.
func (m *Model) State() nav.State {
	return m.ctrl.State()
}

// SetVisuallyOpen shows or hides the link list. Hiding it hands focus back to
// the toggle and drops any quick-jump query.
func (m *Model) SetVisuallyOpen(open bool) {
	m.visuallyOpen = open
	if !open {
		m.focus = focusToggle
		if m.links.ClearQuery() {
			events.Jump.Cleared()
		}
	}
	m.syncViewport()
}

// SetExpanded records the accessibility expanded attribute of the toggle.
func (m *Model) SetExpanded(expanded bool) {
	m.expanded = expanded
}

// SetScrollLocked blocks user scrolling of the page body.
func (m *Model) SetScrollLocked(locked bool) {
	m.scrollLocked = locked
}

// SetEscapeListener controls whether esc is routed to the controller.
func (m *Model) SetEscapeListener(installed bool) {
	m.escapeListener = installed
}

// FocusToggle moves keyboard focus to the menu toggle.
func (m *Model) FocusToggle() {
	m.setFocus(focusToggle)
}

func (m *Model) setFocus(target focusTarget) {
	if target == focusLinks && (!m.visuallyOpen || m.links.Len() == 0) {
		target = focusToggle
	}
	if m.focus == target {
		return
	}
	m.focus = target
	events.UI.Focus(target.String())
}
