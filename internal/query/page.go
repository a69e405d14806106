// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import "fmt"

// Page is the offset/limit pagination bundle applied to a filtered,
// deterministically ordered sequence.
//
// Semantics:
//   - Limit 0 yields an empty page (the total is still reported).
//   - Offset past the end of the sequence yields an empty page, not an error.
//   - Negative values and a limit above the engine's ceiling are rejected
//     with ErrInvalidParameter before any scan happens.
type Page struct {
	Limit  int
	Offset int
}

// validatePage enforces the pagination domain against the configured ceiling.
func validatePage(p Page, maxLimit int) error {
	if p.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidParameter, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidParameter, p.Offset)
	}
	if p.Limit > maxLimit {
		return fmt.Errorf("%w: limit %d exceeds maximum %d", ErrInvalidParameter, p.Limit, maxLimit)
	}
	return nil
}

// paginate selects rows matching the predicate in sequence order, skips
// p.Offset matches, and collects up to p.Limit of the rest. It returns the
// page and the total match count before pagination. The page is never nil so
// an empty result serializes as [] rather than null.
func paginate[T any](rows []T, match func(*T) bool, p Page) ([]T, int) {
	page := make([]T, 0, min(p.Limit, len(rows)))
	total := 0
	for i := range rows {
		if !match(&rows[i]) {
			continue
		}
		if total >= p.Offset && len(page) < p.Limit {
			page = append(page, rows[i])
		}
		total++
	}
	return page, total
}
