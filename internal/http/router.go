package http

import (
	"net/http"

	"streaming-analytics/internal/aggregators"
	"streaming-analytics/internal/ingestors"
	"streaming-analytics/internal/shared/loggers"
	"streaming-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, analyticsService aggregators.AnalyticsService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventHandler := NewIngestEventHandler(ingestionService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	healthHandler := NewHealthHandler(ingestionService)

	// Routes
	router.Post("/events", errorHandlingAdapter(ingestEventHandler))
	router.Route("/analytics", func(r chi.Router) {
		r.Get("/metrics", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleMetrics)))
		r.Get("/top-titles", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleTopTitles)))
		r.Get("/errors", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleErrors)))
		r.Get("/geo", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleGeo)))
		r.Get("/devices", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleDevices)))
		r.Get("/recent-events", errorHandlingAdapter(AppHttpHandlerFunc(analyticsHandler.HandleRecentEvents)))
	})
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
