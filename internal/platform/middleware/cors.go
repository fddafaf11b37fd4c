package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin to read the payload from a browser.
//
// Preflight requests are passed through to the next handler so that OPTIONS
// is answered like every other method.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{"X-Request-Id"},
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}
