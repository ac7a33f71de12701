package events

import "github.com/archie-bi/ursa/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(action string) {
	logging.Trace("app.exit", map[string]interface{}{"action": action})
}

func (AppTracer) Attach(name string) {
	logging.Trace("app.attach", map[string]interface{}{"name": name})
}
