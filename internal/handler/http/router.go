package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nmbt2910/iheartev-sub001/pkg/health"
	"github.com/nmbt2910/iheartev-sub001/pkg/middleware"
)

// NewRouter creates a chi router with all profile service routes registered.
func NewRouter(
	profileService ProfileGetter,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("profile"))
	r.Use(middleware.Tracing("profile"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Profile API endpoints
	profileHandler := NewProfileHandler(profileService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/sellers/{id}/profile", profileHandler.GetSellerProfile)
		r.Get("/buyers/{id}/profile", profileHandler.GetBuyerProfile)
	})

	return r
}
