package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/focusflow/pkg/slogx"
	"github.com/rs/cors"
)

// CORS allows browser clients served from origins to call the API with
// bearer tokens.
func CORS(origins []string) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", slogx.RequestIDHeader},
		ExposedHeaders:   []string{slogx.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
