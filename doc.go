// Package wirework is a small extension layer over a model-view-event
// framework. It adds trackable event bindings with guaranteed teardown,
// a view abstraction with a templating contract and a deterministic close
// lifecycle, and a router that compiles declarative route tables onto
// controller method dispatch.
//
// # Core Concepts
//
// Any object that listens to events on other objects owns a Binder, a
// ledger of its active subscriptions. Every Bind is paired with exactly one
// live listener registration on the source emitter; Unbind and UnbindAll
// release both sides together, so bookkeeping and live listener state can
// never drift apart:
//
//	sub := view.Bind(model, "change", view.onModelChange, nil)
//	...
//	view.Unbind(sub)   // or view.UnbindAll() to release everything
//
// Duplicate bindings are permitted and independent - binding the same
// callback twice produces two subscriptions that are unbound one at a time.
//
// # Views
//
// A View composes a Binder with its own event surface (Events) and a
// templating contract. Templates, template helpers, and triggers are all
// configured as a Prop: either a static value or a zero-argument producer
// resolved at the point of use:
//
//	v := wirework.NewView(wirework.ViewOptions{
//	    Model:    todo,
//	    Template: wirework.Static(todoTemplate),
//	    Triggers: wirework.Static(wirework.TriggerMap{
//	        "click .save": "save:clicked",
//	    }),
//	})
//
// SerializeData feeds the template: the model's data wins over the
// collection's (which is wrapped under "items"), and template helpers are
// shallow-merged on top. Triggers translate DOM events into semantic
// events emitted on the view itself.
//
// Close is terminal and runs a fixed sequence: beforeClose, detach from the
// rendered output, onClose, emit "close", release tracked subscriptions,
// remove the view's own listeners. Hooks and "close" listeners therefore
// still observe a detached view whose bindings are live - useful for
// reading state from a bound model one last time.
//
// # Routers
//
// An AppRouter compiles an ordered route table against a single controller
// and registers the result with an external routing primitive:
//
//	ar, err := wirework.NewAppRouter(target, wirework.RouteTable{
//	    Routes: []wirework.Route{
//	        {Pattern: "todos", Name: "ShowList"},
//	        {Pattern: "todos/:id", Name: "ShowTodo"},
//	    },
//	    Controller: ctrl,
//	})
//
// Routes are registered in reverse declaration order, so later (more
// specific) table entries take precedence on primitives that match in
// registration order. A missing controller method is a ConfigurationError
// raised at construction, before any route is registered - never at
// dispatch time. One router, one controller: multiple controllers mean
// multiple routers.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit ownership (a Binder belongs to exactly one holder)
//   - Explicit lifecycle (fixed close ordering, no hidden teardown)
//   - Explicit configuration (Prop values resolved once at use)
//   - Explicit failure (misconfigured routers fail at construction)
//
// External capabilities - the event emitter, DOM delegation, detaching
// rendered output, and URL pattern matching - are consumed through small
// interfaces (Emitter, Delegator, Region, Routable) and never reimplemented
// here. See adapters/echo for a Routable backed by a real HTTP router.
package wirework
