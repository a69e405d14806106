// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import "errors"

// Engine error taxonomy. Callers classify with errors.Is; wrapped messages
// carry the offending key or parameter.
var (
	// ErrNotFound indicates a single-entity lookup with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter indicates a request parameter outside its valid
	// domain (negative offset, limit above the ceiling, rating bound
	// outside [0, 5]).
	ErrInvalidParameter = errors.New("invalid parameter")
)
