// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"keyword-intel-api/api/middleware"
	"keyword-intel-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RequestsPerMinute caps requests per client IP; 0 disables limiting
	RequestsPerMinute int
}

// NewAPI creates and configures a new Huma API instance
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run before everything else
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RequestsPerMinute)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("Keyword Intel API", "1.0.0")
	config.Info.Description = "API for keyword research aggregation, rank tracking and ranking discovery"

	api := humachi.New(router, config)

	// The OpenAPI spec is served at /openapi.json, the UI at /docs

	return api, router
}
