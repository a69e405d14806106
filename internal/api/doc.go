// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

/*
Package api provides the HTTP REST layer over the query engine.

The package translates HTTP query and path parameters into engine parameter
bundles, invokes the engine, and serializes the plain result structures back
to JSON. No query logic lives here; the engine is the boundary.

Key Components:

  - Router: chi route configuration and the middleware stack
  - Handler: request handlers for the ten endpoints
  - Response formatting: standardized JSON envelope with metadata
  - Error mapping: engine taxonomy to HTTP status codes

Endpoints:

	GET /api/v1/health
	GET /api/v1/movies            GET /api/v1/movies/{movie_id}
	GET /api/v1/ratings           GET /api/v1/ratings/{user_id}/{movie_id}
	GET /api/v1/tags              GET /api/v1/tags/{user_id}/{movie_id}/{tag_text}
	GET /api/v1/links             GET /api/v1/links/{movie_id}
	GET /api/v1/analytics
	GET /metrics                  GET /swagger/*

Error mapping: query.ErrNotFound becomes 404 NOT_FOUND, query.ErrInvalidParameter
becomes 400 VALIDATION_ERROR, anything else becomes 500 INTERNAL_ERROR.
*/
package api
