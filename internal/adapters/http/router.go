// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with the actuator routes mounted under
// basePath (e.g. "/actuator"). When metricsHandler is non-nil it is served
// on GET /metrics. Middleware is applied globally in the order given.
func NewRouter(
	actuatorHandler *handlers.ActuatorHandler,
	basePath string,
	metricsHandler http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Route(basePath, func(r chi.Router) {
		r.Get("/health", actuatorHandler.Health)
		r.Get("/health/readiness", actuatorHandler.Readiness)
		r.Get("/health/liveness", actuatorHandler.Liveness)
		r.Get("/info", actuatorHandler.Info)

		// Admin.
		r.Post("/refresh", actuatorHandler.Refresh)
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	return r
}
