// Package wireworkecho backs wirework's routing primitive with the Echo
// framework. Compiled route tables register as Echo routes; pattern
// captures arrive in handlers as positional arguments.
//
//	e := echo.New()
//	target := wireworkecho.Mount(e)
//	ar, err := wirework.NewAppRouter(target, table)
//
// Or mount on a group to share middleware:
//
//	g := e.Group("/app", authMiddleware)
//	target := wireworkecho.MountGroup(g)
package wireworkecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/wirework"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	prefix  string
	respond echo.HandlerFunc
}

// WithPrefix sets a path prefix for registered routes. Defaults to "/".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithResponder sets the handler that writes the HTTP response after a
// route has dispatched. Defaults to 204 No Content.
func WithResponder(h echo.HandlerFunc) Option {
	return func(o *options) {
		o.respond = h
	}
}

// Router is a wirework.Routable that registers compiled routes with Echo.
// Echo performs the URL pattern matching; wirework only hands over the
// table. Echo matches by specificity rather than registration order, so
// the reverse-registration precedence contract is honored trivially.
type Router struct {
	add     func(path string, h echo.HandlerFunc) *echo.Route
	prefix  string
	respond echo.HandlerFunc
}

// Mount returns a Router registering routes on an Echo instance.
func Mount(e *echo.Echo, opts ...Option) *Router {
	return newRouter(e.GET, opts)
}

// MountGroup returns a Router registering routes on an Echo group, so
// routed handlers share the group's middleware.
func MountGroup(g *echo.Group, opts ...Option) *Router {
	return newRouter(g.GET, opts)
}

func newRouter(add func(string, echo.HandlerFunc, ...echo.MiddlewareFunc) *echo.Route, opts []Option) *Router {
	o := &options{
		prefix: "/",
		respond: func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Router{
		add: func(path string, h echo.HandlerFunc) *echo.Route {
			return add(path, h)
		},
		prefix:  o.prefix,
		respond: o.respond,
	}
}

// Route registers one compiled route. The handler receives the pattern's
// captures in declaration order.
func (r *Router) Route(pattern, name string, handler wirework.RouteHandler) {
	path, params := translatePattern(pattern)
	route := r.add(joinPath(r.prefix, path), func(c echo.Context) error {
		captures := make([]string, len(params))
		for i, p := range params {
			captures[i] = c.Param(p)
		}
		handler(captures...)
		return r.respond(c)
	})
	route.Name = name
}

// translatePattern converts a route pattern into an Echo path and the
// ordered list of capture parameter names. ":name" segments map directly;
// a "*name" segment becomes Echo's trailing wildcard.
func translatePattern(pattern string) (string, []string) {
	segments := strings.Split(pattern, "/")
	var params []string
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			params = append(params, seg[1:])
		case strings.HasPrefix(seg, "*"):
			segments[i] = "*"
			params = append(params, "*")
		}
	}
	return strings.Join(segments, "/"), params
}

func joinPath(prefix, path string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Render writes a wirework view to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return wireworkecho.Render(c, view)
//	}
func Render(c echo.Context, v *wirework.View) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return v.Render(c.Request().Context(), c.Response())
}

// RenderComponent writes a raw templ component to the Echo response, for
// pages that are not views.
func RenderComponent(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
