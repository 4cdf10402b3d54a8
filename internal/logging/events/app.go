package events

import "github.com/atomicstack/navmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(err error) {
	if err != nil {
		logging.Trace("app.stop", map[string]interface{}{"error": err.Error()})
		return
	}
	logging.Trace("app.stop", nil)
}
