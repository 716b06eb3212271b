package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"creatorscore/internal/http/handlers"
	"creatorscore/internal/middleware"
)

// Options wires the router's cross-cutting concerns.
type Options struct {
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Log))
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}
	r.Use(middleware.Market(opts.CountryLookup))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/profiles/{id}/score", func(r chi.Router) {
		r.Get("/", app.ProfileScore)
		r.Get("/categories/{category}", app.CategoryScore)
	})

	return r
}
