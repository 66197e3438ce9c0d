package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser UI to call the relay. An origin of "*" allows any
// origin, which matches the relay's unauthenticated contract.
func CORS(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
