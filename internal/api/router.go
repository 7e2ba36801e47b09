package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/aperrault/phraseur/internal/api/middleware"
	"github.com/aperrault/phraseur/internal/service"
)

// RouterDeps bundles everything the router needs to build its handlers.
type RouterDeps struct {
	APIKey    string
	Sentences service.SentenceService
	Verbs     service.VerbService
	Problems  service.ProblemService
	Cache     CacheStatsProvider
	Logger    *slog.Logger
}

// NewRouter creates and configures the application router with all routes
// and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	sentenceHandler := NewSentenceHandler(deps.Sentences, deps.Logger)
	verbHandler := NewVerbHandler(deps.Verbs, deps.Logger)
	problemHandler := NewProblemHandler(deps.Problems, deps.Logger)
	cacheHandler := NewCacheHandler(deps.Cache, deps.Logger)

	apiKey := apiMiddleware.NewAPIKeyMiddleware(deps.APIKey)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKey.Authenticate)

		r.Get("/verbs/random", verbHandler.Random)
		r.Get("/verbs/{infinitive}", verbHandler.Get)
		r.Post("/verbs/{infinitive}/download", verbHandler.Download)

		r.Get("/sentences", sentenceHandler.List)
		r.Post("/sentences", sentenceHandler.Generate)
		r.Get("/sentences/random", sentenceHandler.Random)
		r.Get("/sentences/{id}", sentenceHandler.Get)

		r.Post("/problems/batch", problemHandler.Batch)

		r.Get("/cache/stats", cacheHandler.Stats)
	})

	// Health check endpoint, unauthenticated
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
