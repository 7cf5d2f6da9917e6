package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/CharMTI/internal/events"
	"github.com/MikeSquared-Agency/CharMTI/internal/metrics"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

func NewRouter(e *scoring.Engine, ev events.Client, m *metrics.Metrics, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(MetricsMiddleware(m))
	r.Use(RateLimitMiddleware(rateLimit))

	statements := NewStatementsHandler(e.Bank())
	results := NewResultsHandler(e, ev, m, logger)
	types := NewTypesHandler(e.Catalog())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/statements", statements.List)
		r.Get("/scale", statements.Scale)

		r.Post("/results", results.Create)
		r.Get("/results", results.FromQuery)
		r.Post("/results/explain", results.Explain)

		r.Get("/types", types.List)
		r.Get("/types/{code}", types.Get)
	})

	return r
}

func NewMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}
