// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

// Package models defines the MovieLens entity types, the API response envelope,
// and the analytics result types shared between the query engine and the HTTP layer.
//
// Entity JSON field names follow the MovieLens wire format used by the public
// dataset (movieId, userId, imdbId, tmdbId, ...); analytics fields use snake_case.
// All entity values are immutable after dataset load.
package models
