package events

import "github.com/atomicstack/navmenu/internal/logging"

type LinksTracer struct{}

var Links = LinksTracer{}

func (LinksTracer) Loaded(path string, count int) {
	logging.Trace("links.load", map[string]interface{}{"path": path, "count": count})
}

func (LinksTracer) Reload(path string, count int) {
	logging.Trace("links.reload", map[string]interface{}{"path": path, "count": count})
}

func (LinksTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("links.error", map[string]interface{}{"path": path, "error": err.Error()})
}
