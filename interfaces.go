package wirework

// Listener is an event callback. Arguments are whatever the emitter passed
// to Emit.
type Listener func(args ...any)

// Token identifies one listener registration on an emitter. Tokens are
// issued by Subscribe and are unique per emitter; the zero Token is never
// issued and releases nothing.
type Token uint64

// Emitter is the external event primitive wirework binds against.
//
// Subscribe registers fn for event under context and returns a Token
// naming exactly that registration. Duplicate registrations are
// independent - each Subscribe adds one listener and issues a fresh Token.
//
// Release removes the single registration the Token names; Unsubscribe is
// the match-based alternative, removing one registration with the same
// event, callback, and context originally passed. Binders release through
// tokens, so two closures that happen to share a code pointer can never be
// confused for one another.
//
// The context value is an identity tag used to match registrations (Go
// closures already capture their receiver), so it must be comparable -
// pointers are typical. The Events type in this package satisfies Emitter;
// any framework emitter with equivalent semantics can be used instead.
type Emitter interface {
	Subscribe(event string, fn Listener, context any) Token
	Unsubscribe(event string, fn Listener, context any)
	Release(event string, token Token)
	Emit(event string, args ...any)
}

// DOMEvent is the event object a delegation capability passes to handlers.
//
// It is opaque to wirework except for two optional capabilities, checked by
// type assertion on trigger-derived handlers:
//
//	interface{ PreventDefault() }
//	interface{ StopPropagation() }
type DOMEvent any

// DOMHandler handles a delegated DOM event.
type DOMHandler func(e DOMEvent)

// Delegator is the external DOM-delegation capability. It receives the
// merged descriptor-to-handler mapping for a view (explicit DOM events
// layered under trigger-derived handlers).
type Delegator interface {
	Delegate(handlers map[string]DOMHandler)
}

// Region is the external capability that detaches a view from its rendered
// output. Detach is called exactly once during Close, before the onClose
// hook runs.
type Region interface {
	Detach()
}

// RouteHandler is a compiled route dispatch function. Captures are the
// pattern's extracted parameters, in pattern order.
type RouteHandler func(captures ...string)

// Routable is the external routing primitive. It accepts registrations and
// performs pattern matching itself; wirework only compiles tables into
// registrations. Primitives that try routes in registration order receive
// registrations in reverse declaration order, giving later table entries
// precedence.
type Routable interface {
	Route(pattern, name string, handler RouteHandler)
}

// Controller exposes route handlers by name for AppRouter dispatch.
//
// Implementing Controller is the preferred, explicitly-checked path:
//
//	func (c *TodoController) RouteHandlers() map[string]wirework.RouteHandler {
//	    return map[string]wirework.RouteHandler{
//	        "ShowList": c.ShowList,
//	        "ShowTodo": c.ShowTodo,
//	    }
//	}
//
// Controllers that do not implement this interface fall back to reflection:
// exported methods with the signature func(...string) are resolved by name.
type Controller interface {
	RouteHandlers() map[string]RouteHandler
}
