// Package api exposes the recommender over HTTP.
package api

import (
	"net/http"

	"business-recommender/internal/common/config"
	"business-recommender/internal/common/database"
	"business-recommender/internal/common/logger"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Recommender Recommender
	Contacter   MentorContacter
	// Checks are pinged by /ready.
	Checks map[string]database.Pinger
	Logger logger.Logger
}

type Router struct {
	cfg config.ServerConfig
	h   *handlers
}

func NewRouter(cfg config.ServerConfig, deps Dependencies) *Router {
	return &Router{
		cfg: cfg,
		h: &handlers{
			recommender: deps.Recommender,
			contacter:   deps.Contacter,
			checks:      deps.Checks,
			logger:      deps.Logger.WithFields(map[string]interface{}{"component": "api"}),
		},
	}
}

// Setup builds the handler tree.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(rt.h.logger))
	router.Use(corsMiddleware(rt.cfg.CORS))

	router.Get("/health", rt.h.health)
	router.Get("/ready", rt.h.ready)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimitMiddleware(rt.cfg.RateLimit))

		r.Post("/recommendations", rt.h.recommend)
		r.Get("/model-info", rt.h.modelInfo)
		r.Get("/templates", rt.h.listTemplates)
		if rt.h.contacter != nil {
			r.Post("/mentors/{mentorId}/contact", rt.h.contactMentor)
		}
	})

	return router
}
