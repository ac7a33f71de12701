package events

import "github.com/archie-bi/ursa/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
)

func (UITracer) Cursor(index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"index": index})
}

func (UITracer) SelectAction(index int, action string) {
	logging.Trace("ui.action", map[string]interface{}{"index": index, "action": action})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
