// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
// It provides a consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 100, "limit": 10, "offset": 0, "movies": [...]},
//	  "metadata": {"timestamp": "2026-02-12T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "movie 99999 not found"},
//	  "metadata": {"timestamp": "2026-02-12T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields. QueryTimeMS is the
// engine execution time for the request; it is omitted when zero.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the structured error payload returned on failures.
//
// Error codes used by this service:
//   - VALIDATION_ERROR: invalid request parameters
//   - NOT_FOUND: the requested entity does not exist
//   - METHOD_NOT_ALLOWED: wrong HTTP method
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieListResponse is the payload of the movie list endpoint. Total is the
// number of movies matching the filter before pagination, so clients can
// compute whether more pages exist.
type MovieListResponse struct {
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Movies []Movie `json:"movies"`
}

// RatingListResponse is the payload of the rating list endpoint.
type RatingListResponse struct {
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	Ratings []Rating `json:"ratings"`
}

// TagListResponse is the payload of the tag list endpoint.
type TagListResponse struct {
	Total  int   `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Tags   []Tag `json:"tags"`
}

// LinkListResponse is the payload of the link list endpoint.
type LinkListResponse struct {
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Links  []Link `json:"links"`
}

// HealthResponse is the payload of the health endpoint, reporting process
// uptime and the size of the loaded dataset.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	MovieCount    int    `json:"movie_count"`
	RatingCount   int    `json:"rating_count"`
	TagCount      int    `json:"tag_count"`
	LinkCount     int    `json:"link_count"`
}
