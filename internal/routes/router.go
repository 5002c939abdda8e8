package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"youthstream/palco/internal/api"
	"youthstream/palco/internal/config"
	"youthstream/palco/internal/db"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/middleware"
)

// RegisterRoutes builds the chi router with global middleware and all
// API routes.
func RegisterRoutes(cfg *config.AppConfig, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/health", api.HealthCheckHandler(db.DB, upSince))

	RegisterAPIRoutes(r, deps, metricsReg)

	return r
}
