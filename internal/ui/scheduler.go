package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/clock"
)

// timerFiredMsg is delivered when a scheduled tick elapses.
type timerFiredMsg struct {
	id clock.TimerID
}

type tickFunc func(d time.Duration, msg tea.Msg) tea.Cmd

func realTick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// teaScheduler implements nav.Scheduler on top of tea.Tick. Callbacks run
// inside Update, on the program's event loop.
type teaScheduler struct {
	next    clock.TimerID
	pending map[clock.TimerID]func()
	queued  []tea.Cmd
	tick    tickFunc
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[clock.TimerID]func()), tick: realTick}
}

func (s *teaScheduler) After(d time.Duration, fn func()) clock.TimerID {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.queued = append(s.queued, s.tick(d, timerFiredMsg{id: id}))
	return id
}

func (s *teaScheduler) Cancel(id clock.TimerID) {
	delete(s.pending, id)
}

// fire runs the callback for id unless it was cancelled.
func (s *teaScheduler) fire(id clock.TimerID) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	if fn != nil {
		fn()
	}
	return true
}

// drain hands over the tick commands queued since the last call.
func (s *teaScheduler) drain() []tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return cmds
}
