package wirework

// TriggerMap maps DOM event descriptors (e.g. "click .save") to semantic
// event names (e.g. "save:clicked") emitted on the view.
type TriggerMap map[string]string

// Optional DOM event capabilities. Trigger-derived handlers call these when
// the event object provides them.
type defaultPreventer interface {
	PreventDefault()
}

type propagationStopper interface {
	StopPropagation()
}

// triggerHandler wraps a semantic event name into a DOM handler: suppress
// the raw event's default behavior and propagation where supported, then
// emit the semantic event on the view's own surface.
func triggerHandler(target Emitter, event string) DOMHandler {
	return func(e DOMEvent) {
		if p, ok := e.(defaultPreventer); ok {
			p.PreventDefault()
		}
		if s, ok := e.(propagationStopper); ok {
			s.StopPropagation()
		}
		target.Emit(event)
	}
}

// mergeDOMEvents layers over on top of base; keys in over win. Returns nil
// only when both inputs are nil.
func mergeDOMEvents(base, over map[string]DOMHandler) map[string]DOMHandler {
	if base == nil && over == nil {
		return nil
	}
	merged := make(map[string]DOMHandler, len(base)+len(over))
	for k, h := range base {
		merged[k] = h
	}
	for k, h := range over {
		merged[k] = h
	}
	return merged
}
