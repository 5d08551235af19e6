package wirework

import "reflect"

// Route is one declarative route table entry: a pattern for the routing
// primitive and the controller method name it dispatches to.
type Route struct {
	Pattern string
	Name    string
}

// RouteTable is the declarative input to NewAppRouter: the ordered route
// declarations and their default controller. Declaration order is
// meaningful - later entries take precedence at match time on primitives
// that try routes in registration order.
type RouteTable struct {
	Routes     []Route
	Controller any
}

// RouterOption configures NewAppRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	controller any
}

// WithController overrides the route table's default controller.
func WithController(c any) RouterOption {
	return func(cfg *routerConfig) {
		cfg.controller = c
	}
}

// AppRouter compiles a route table against a single controller and
// registers the result with a routing primitive. Routes are immutable
// after construction. One router accepts exactly one controller; multiple
// controllers require multiple router instances.
//
// AppRouter owns a Binder like any event-binding object, so a router can
// track subscriptions on models or views and release them with UnbindAll.
type AppRouter struct {
	binder     *Binder
	routes     []Route
	controller any
}

// NewAppRouter resolves every route in table against the controller and
// registers the compiled routes with target.
//
// All method names are resolved before anything is registered: a missing
// method fails with a ConfigurationError naming it, and target never sees
// a partial table. Registration then happens in reverse declaration order,
// so the last-declared route is registered first.
func NewAppRouter(target Routable, table RouteTable, opts ...RouterOption) (*AppRouter, error) {
	cfg := routerConfig{controller: table.Controller}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.controller == nil {
		return nil, &ConfigurationError{Err: ErrNoController}
	}

	handlers := make([]RouteHandler, len(table.Routes))
	for i, route := range table.Routes {
		h, err := resolveHandler(cfg.controller, route.Name)
		if err != nil {
			return nil, err
		}
		handlers[i] = h
	}

	for i := len(table.Routes) - 1; i >= 0; i-- {
		route := table.Routes[i]
		target.Route(route.Pattern, route.Name, handlers[i])
	}

	ar := &AppRouter{
		routes:     append([]Route(nil), table.Routes...),
		controller: cfg.controller,
	}
	ar.binder = NewBinder(ar)
	return ar, nil
}

// resolveHandler looks up name on the controller. Controllers implementing
// the Controller interface use the explicit mapping; everything else falls
// back to reflection over exported methods with the RouteHandler signature.
// The resolved handler is already bound to the controller.
func resolveHandler(controller any, name string) (RouteHandler, error) {
	if c, ok := controller.(Controller); ok {
		h, ok := c.RouteHandlers()[name]
		if !ok || h == nil {
			return nil, &ConfigurationError{Method: name, Err: ErrMethodNotFound}
		}
		return h, nil
	}

	m := reflect.ValueOf(controller).MethodByName(name)
	if !m.IsValid() {
		return nil, &ConfigurationError{Method: name, Err: ErrMethodNotFound}
	}
	fn, ok := m.Interface().(func(...string))
	if !ok {
		return nil, &ConfigurationError{Method: name, Err: ErrBadHandler}
	}
	return RouteHandler(fn), nil
}

// Routes returns a copy of the compiled route table, in declaration order.
func (ar *AppRouter) Routes() []Route {
	return append([]Route(nil), ar.routes...)
}

// Controller returns the controller the router dispatches to.
func (ar *AppRouter) Controller() any {
	return ar.controller
}

// Bind tracks a subscription to event on source through the router's
// Binder. A nil context defaults to the router itself.
func (ar *AppRouter) Bind(source Emitter, event string, fn Listener, context any) *Subscription {
	return ar.binder.Bind(source, event, fn, context)
}

// Unbind releases one tracked subscription.
func (ar *AppRouter) Unbind(sub *Subscription) {
	ar.binder.Unbind(sub)
}

// UnbindAll releases every subscription the router holds.
func (ar *AppRouter) UnbindAll() {
	ar.binder.UnbindAll()
}
