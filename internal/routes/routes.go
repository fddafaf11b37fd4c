// Package routes assembles the HTTP router.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/pipeline-hello/internal/platform/logging"
	appmiddleware "github.com/janisto/pipeline-hello/internal/platform/middleware"
)

// New returns a router that sends every request, whatever its method or path,
// through the shared middleware stack to h.
func New(h http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.Security(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For and X-Real-IP; only the access log reads it.
		chimiddleware.RealIP,
		logging.RequestLogger(),
		logging.AccessLogger(),
		appmiddleware.Recoverer(),
	)

	// NotFound and MethodNotAllowed catch what the wildcard cannot, such as
	// methods chi does not register for a route.
	router.Handle("/*", h)
	router.NotFound(h.ServeHTTP)
	router.MethodNotAllowed(h.ServeHTTP)
	return router
}
