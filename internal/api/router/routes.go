// Package router wires the domain route registrations onto the fiber app.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// Router carries the app for domain route registration.
type Router struct {
	app *fiber.App
}

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter creates a Router over the app.
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware registers a route with its middleware chain
// through a group and .Use(). Fiber v3 does not reliably run middleware
// passed inline to Get/Post, so domain routers must go through here.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc is a domain's route registration, exported by its router
// package.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain registration under /api/v1. The caller
// passes each domain's Register to avoid import cycles.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
