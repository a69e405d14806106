// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/movielens-api/internal/config"
	"github.com/tomtom215/movielens-api/internal/middleware"
	"github.com/tomtom215/movielens-api/internal/query"
)

// Router wires the handlers to the Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the query engine using the service
// configuration for CORS and rate limiting.
func NewRouter(engine *query.Engine, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(engine, cfg),
		chiMiddleware: NewChiMiddleware(&ChiMiddlewareConfig{
			CORSAllowedOrigins: cfg.Security.CORSOrigins,
			CORSAllowedMethods: []string{"GET", "OPTIONS"},
			CORSAllowedHeaders: []string{"Content-Type"},
			CORSMaxAge:         86400,

			RateLimitRequests: cfg.Security.RateLimitReqs,
			RateLimitWindow:   cfg.Security.RateLimitWindow,
			RateLimitDisabled: cfg.Security.RateLimitDisabled,
		}),
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// CORS must be global to handle OPTIONS preflight.
	r.Use(router.chiMiddleware.CORS())

	// Core API endpoints. Everything is read-only; one rate limit class
	// covers the lot.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)

		r.Get("/movies", router.handler.ListMovies)
		r.Get("/movies/{movie_id}", router.handler.GetMovie)

		r.Get("/ratings", router.handler.ListRatings)
		r.Get("/ratings/{user_id}/{movie_id}", router.handler.GetRating)

		r.Get("/tags", router.handler.ListTags)
		r.Get("/tags/{user_id}/{movie_id}/{tag_text}", router.handler.GetTag)

		r.Get("/links", router.handler.ListLinks)
		r.Get("/links/{movie_id}", router.handler.GetLink)

		r.Get("/analytics", router.handler.Analytics)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, codeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
