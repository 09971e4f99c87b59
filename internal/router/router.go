package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tangle-dev/tangle/internal/handler"
	"github.com/tangle-dev/tangle/internal/middleware/metrics"
	"github.com/tangle-dev/tangle/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", handler.Health(deps.Storage))
	r.Handle("/metrics", promhttp.Handler())

	h := deps.Handler
	r.Route("/v1", func(r chi.Router) {
		r.Post("/users", h.UpsertUser)
		r.Get("/users/{userId}", h.GetUser)
		r.Get("/users/{userId}/threads", h.GetUserThreads)
		r.Get("/users/{userId}/replies", h.GetUserReplies)
		r.Get("/users/{userId}/activity", h.GetUserActivity)

		r.Post("/threads", h.CreateThread)
		r.Get("/threads/{thread}", h.GetThread)
		r.Delete("/threads/{thread}", h.DeleteThread)
		r.Post("/threads/{thread}/likes", h.ToggleLike)

		r.Post("/communities", h.CreateCommunity)
		r.Get("/communities/{community}", h.GetCommunity)
		r.Put("/communities/{community}/members/{userId}", h.AddCommunityMember)
	})

	return r
}
