// Package httpapi assembles the HTTP router: middleware chain, API routes
// and the static file server for generated images.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"anostudio/internal/http/handlers"
	"anostudio/internal/infra"
	"anostudio/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.I18N(cfg.DefaultLocale, lookup),
		middleware.Logger(app.Logger),
	)

	limitGeneration := middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/settings", func(r chi.Router) {
		r.Get("/", app.GetSettings)
		r.Put("/", app.UpdateSettings)
	})

	r.Route("/v1/catalog", func(r chi.Router) {
		r.Get("/product-types", app.ProductTypes)
		r.Get("/options", app.StyleOptions)
		r.Get("/poster", app.PosterOptions)
	})

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", app.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetSession)
			r.Delete("/", app.DeleteSession)

			r.Post("/image", app.UploadSourceImage)
			r.Post("/style-image", app.UploadStyleImage)
			r.Delete("/style-image", app.RemoveStyleImage)
			r.Put("/config", app.UpdateSessionConfig)
			r.With(limitGeneration).Post("/generate", app.Generate)
			r.With(limitGeneration).Post("/upscale", app.Upscale)
			r.Get("/results", app.Results)
			r.Get("/download", app.DownloadResults)

			r.Route("/poster", func(r chi.Router) {
				r.Post("/source", app.UploadPosterSource)
				r.Post("/source/from-result", app.PosterSourceFromResult)
				r.Put("/config", app.UpdatePosterConfig)
				r.With(limitGeneration).Post("/generate", app.GeneratePoster)
				r.Get("/results", app.PosterResults)
				r.Get("/download", app.DownloadPosters)
				r.Post("/copy", app.SuggestPosterCopy)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/", app.GetChat)
				r.Post("/", app.PostChat)
				r.Delete("/", app.ResetChat)
				r.Post("/apply", app.ApplyRecommendation)
			})
		})
	})

	// Generated images are served straight off disk.
	base := strings.TrimSuffix(cfg.StorageBaseURL, "/")
	fs := http.StripPrefix(base+"/", http.FileServer(http.Dir(cfg.StoragePath)))
	r.Get(base+"/*", fs.ServeHTTP)

	return r
}
