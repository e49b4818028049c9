package httpx

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS allows the browser client at origins to call the API with
// credentials, which the session cookie needs.
func CORS(origins []string) Middleware {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.ExposedHeaders([]string{"X-Request-ID", "Retry-After"}),
	)
}
