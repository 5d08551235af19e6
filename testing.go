package wirework

import (
	"bytes"
	"context"
)

// Registration is one route registration captured by a RouteRecorder, in
// the order the routing primitive received it.
type Registration struct {
	Pattern string
	Name    string
	Handler RouteHandler
}

// RouteRecorder is a Routable that records registrations instead of
// matching URLs. Use it to assert on registration order and to drive
// compiled handlers directly:
//
//	rec := &wirework.RouteRecorder{}
//	ar, err := wirework.NewAppRouter(rec, table)
//	...
//	rec.Dispatch("ShowTodo", "42")
type RouteRecorder struct {
	Registrations []Registration
}

// Route records a registration.
func (r *RouteRecorder) Route(pattern, name string, handler RouteHandler) {
	r.Registrations = append(r.Registrations, Registration{
		Pattern: pattern,
		Name:    name,
		Handler: handler,
	})
}

// Dispatch invokes the handler registered under name with the given
// captures. Returns false if no such registration exists.
func (r *RouteRecorder) Dispatch(name string, captures ...string) bool {
	for _, reg := range r.Registrations {
		if reg.Name == name {
			reg.Handler(captures...)
			return true
		}
	}
	return false
}

// StubEvent is a DOM event exposing both optional capabilities and
// recording whether they were called.
type StubEvent struct {
	DefaultPrevented   bool
	PropagationStopped bool
}

// PreventDefault records the call.
func (e *StubEvent) PreventDefault() { e.DefaultPrevented = true }

// StopPropagation records the call.
func (e *StubEvent) StopPropagation() { e.PropagationStopped = true }

// BareEvent is a DOM event with neither optional capability. Handlers must
// tolerate it.
type BareEvent struct{}

// RecorderRegion is a Region counting Detach calls.
type RecorderRegion struct {
	Detached int
}

// Detach records the call.
func (r *RecorderRegion) Detach() { r.Detached++ }

// RecorderDelegator is a Delegator capturing the last handler map it was
// handed.
type RecorderDelegator struct {
	Handlers map[string]DOMHandler
}

// Delegate captures the handler map.
func (d *RecorderDelegator) Delegate(handlers map[string]DOMHandler) {
	d.Handlers = handlers
}

// RenderView renders a view to a string using a background context. Use
// for pure template assertions in tests:
//
//	html, err := wirework.RenderView(v)
func RenderView(v *View) (string, error) {
	var buf bytes.Buffer
	if err := v.Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
