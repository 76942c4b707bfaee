package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// Options configures the outer HTTP surface.
type Options struct {
	// StaticDir, when non-empty, is served under /static for locally stored
	// flyers.
	StaticDir string
	// AllowedOrigins enables CORS for the listed browser origins.
	AllowedOrigins []string
	// GenerateLimit caps renders per client IP per minute; 0 disables the
	// limiter.
	GenerateLimit int
}

// NewRouter assembles the thin transport around the flyer engine.
func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Log))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/flyers", func(r chi.Router) {
		if opts.GenerateLimit > 0 {
			limited := r.With(middleware.RateLimit(opts.GenerateLimit, time.Minute))
			limited.Post("/generate", app.GenerateFlyer)
		} else {
			r.Post("/generate", app.GenerateFlyer)
		}
		r.Post("/copy", app.GenerateCopy)
		r.Get("/presets", app.ListPresets)
		r.Get("/presets/suggest", app.SuggestPreset)
	})

	if opts.StaticDir != "" {
		fs := stdhttp.StripPrefix("/static/", stdhttp.FileServer(stdhttp.Dir(opts.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
