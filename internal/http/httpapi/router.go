package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"donorpulse/internal/http/handlers"
	"donorpulse/internal/infra"
	"donorpulse/internal/middleware"
)

// NewRouter assembles the middleware chain and API routes.
func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RealIP,
		middleware.RequestID,
		middleware.Logger(log),
		chimiddleware.Recoverer,
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.Locale(cfg.DefaultLocale),
	)

	r.Get("/healthz", app.Health)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	r.Route("/api", func(r chi.Router) {
		r.Get("/donations", app.DonationsList)
		r.Get("/stats", app.StatsSummary)
		r.Get("/trend", app.TrendSummary)
		r.Get("/categories", app.CategoriesSummary)
		r.Get("/series", app.SeriesByRange)
		r.Post("/donate", app.DonationsCreate)
		r.Post("/simulate", app.DonationsSimulate)
	})

	return r
}
