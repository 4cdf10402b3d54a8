package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/logging/events"
)

// Request describes a link navigation.
type Request struct {
	ID     string
	Label  string
	Target string
}

// Result is the message produced once a navigation has been resolved.
type Result struct {
	ID     string
	Label  string
	Target string
	Line   int
	Err    error
}

// Resolver maps a link target to the first line of its page section.
type Resolver func(target string) (int, bool)

// Bus coordinates the execution of link navigations.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a navigation into a Bubble Tea command while emitting trace
// logs. The resolver is captured at call time, so it must not depend on
// state that the update loop mutates afterwards.
func (b *Bus) Execute(req Request, resolve Resolver) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if resolve == nil || req.Target == "" {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		res := Result{ID: req.ID, Label: req.Label, Target: req.Target}
		line, ok := resolve(req.Target)
		if !ok {
			res.Err = fmt.Errorf("no section for %q", req.Target)
		} else {
			res.Line = line
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}
