package events

import "github.com/archie-bi/ursa/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonEscape sessionReason = "escape"
	SessionReasonEmpty  sessionReason = "empty"
)

var Session = SessionTracer{}

func (SessionTracer) List(count int) {
	logging.Trace("session.list", map[string]interface{}{"count": count})
}

func (SessionTracer) NewPrompt(existing int) {
	logging.Trace("session.new.prompt", map[string]interface{}{"existing": existing})
}

func (SessionTracer) RenamePrompt(target string) {
	logging.Trace("session.rename.prompt", map[string]interface{}{"target": target})
}

func (SessionTracer) Create(name string) {
	logging.Trace("session.new.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) Attach(target string) {
	logging.Trace("session.attach", map[string]interface{}{"target": target})
}

func (SessionTracer) CancelNew(reason sessionReason) {
	logging.Trace("session.new.cancel", map[string]interface{}{"reason": string(reason)})
}

func (SessionTracer) CancelRename(target string, reason sessionReason) {
	logging.Trace("session.rename.cancel", map[string]interface{}{"target": target, "reason": string(reason)})
}

func (SessionTracer) SubmitNew(name string) {
	logging.Trace("session.new.submit", map[string]interface{}{"name": name})
}

func (SessionTracer) SubmitRename(target, name string) {
	logging.Trace("session.rename.submit", map[string]interface{}{"target": target, "name": name})
}
