package router

import (
	"strings"

	"github.com/Brownie44l1/minihttp/internal/request"
	"github.com/Brownie44l1/minihttp/internal/response"
)

// Handler is a function that handles one parsed request
type Handler func(w *response.Writer, req *request.Request)

// Route is a path prefix bound to a handler for one method
type Route struct {
	Method  string
	Prefix  string
	Handler Handler
}

// Router matches requests against prefix routes in registration order
type Router struct {
	routes  []*Route
	methods []string
}

// New creates a new router
func New() *Router {
	return &Router{
		routes: make([]*Route, 0),
	}
}

// Handle registers a new route
func (r *Router) Handle(method, prefix string, handler Handler) {
	r.routes = append(r.routes, &Route{
		Method:  method,
		Prefix:  prefix,
		Handler: handler,
	})

	for _, m := range r.methods {
		if m == method {
			return
		}
	}
	r.methods = append(r.methods, method)
}

// GET is a shortcut for Handle("GET", ...)
func (r *Router) GET(prefix string, handler Handler) {
	r.Handle("GET", prefix, handler)
}

// Match finds the first route whose prefix matches path
func (r *Router) Match(method, path string) *Route {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if strings.HasPrefix(path, route.Prefix) {
			return route
		}
	}
	return nil
}

// Allows reports whether any route is registered for method
func (r *Router) Allows(method string) bool {
	for _, m := range r.methods {
		if m == method {
			return true
		}
	}
	return false
}

// ServeRequest dispatches req: 405 for a method no route serves, the
// first matching route's handler, or 404.
func (r *Router) ServeRequest(w *response.Writer, req *request.Request) {
	if !r.Allows(req.Method) {
		w.ErrorResponse(response.StatusMethodNotAllowed, r.methodNotAllowedMessage())
		return
	}

	route := r.Match(req.Method, req.Path)
	if route == nil {
		w.ErrorResponse(response.StatusNotFound, "The requested resource was not found.")
		return
	}

	route.Handler(w, req)
}

func (r *Router) methodNotAllowedMessage() string {
	if len(r.methods) == 0 {
		return "No methods are supported."
	}
	return "Only " + strings.Join(r.methods, ", ") + " method is supported."
}
