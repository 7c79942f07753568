package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps next with the cross-origin policy for origins.
func CORS(origins []string, next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", UserIDHeader, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(next)
}
