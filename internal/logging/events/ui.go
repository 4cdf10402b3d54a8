package events

import "github.com/atomicstack/navmenu/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

type JumpTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
	Jump    = JumpTracer{}
)

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) LinkCursor(cursor int) {
	logging.Trace("ui.link.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) ScrollBlocked(offset int) {
	logging.Trace("ui.scroll.blocked", map[string]interface{}{"offset": offset})
}

func (UITracer) Scroll(offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"offset": offset})
}

func (JumpTracer) Query(query string, match int) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "match": match})
}

func (JumpTracer) Cleared() {
	logging.Trace("ui.jump.clear", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
