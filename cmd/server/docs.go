// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

// Package main provides the MovieLens API HTTP server
//
// MovieLens API serves read-only queries over the MovieLens dataset:
// movies, ratings, tags, external links, and whole-dataset analytics.
//
// @title MovieLens API
// @version 1.0
// @description Read-only query service over the MovieLens dataset
// @description
// @description ## Dataset
// @description
// @description The service loads the four CSV files of a published MovieLens
// @description archive (movies.csv, ratings.csv, tags.csv, links.csv) into
// @description memory at startup. The dataset is immutable for the lifetime
// @description of the process; there are no write endpoints.
// @description
// @description ## Pagination
// @description
// @description List endpoints accept limit (default 100, maximum 1000) and
// @description offset query parameters. Responses carry the total matching
// @description row count alongside the page.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-29T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/movielens-api/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Service health and dataset size
//
// @tag.name Movies
// @tag.description Movie catalog queries with title, genre, and identifier filters
//
// @tag.name Ratings
// @tag.description User rating queries with identifier and value-range filters
//
// @tag.name Tags
// @tag.description Free-text tag queries addressed by (userId, movieId, tag text)
//
// @tag.name Links
// @tag.description External identifier (IMDb, TMDb) queries
//
// @tag.name Analytics
// @tag.description Whole-dataset statistics and rankings
package main
