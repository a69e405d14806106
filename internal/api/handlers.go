// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"time"

	"github.com/tomtom215/movielens-api/internal/config"
	"github.com/tomtom215/movielens-api/internal/query"
)

// Version is the service version reported by the health endpoint.
// Overridden at build time via -ldflags "-X ...api.Version=v1.2.3".
var Version = "dev"

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files by entity:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response and parameter helpers
//   - handlers_health.go: health endpoint
//   - handlers_movies.go, handlers_ratings.go, handlers_tags.go,
//     handlers_links.go: entity list and lookup endpoints
//   - handlers_analytics.go: dataset statistics endpoint
type Handler struct {
	engine    *query.Engine
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler over the query engine.
func NewHandler(engine *query.Engine, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}
