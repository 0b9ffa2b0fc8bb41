// Package middleware holds the chi middleware shared by every route:
// request identification, CORS, security headers, and content negotiation
// hints.
package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CORS returns middleware with permissive API defaults. The request ID
// header is exposed so browser clients can correlate their own logs.
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
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			chimiddleware.RequestIDHeader,
		},
		ExposedHeaders: []string{chimiddleware.RequestIDHeader},
		MaxAge:         300,
	})
}
