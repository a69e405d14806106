// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

/*
Package query implements the read-only query and aggregation engine over the
dataset store. It is the only part of the service with nontrivial logic:
parameter validation, multi-field filtering, composite-key lookups with
join resolution, pagination arithmetic, and aggregate computation.

Key Components:

  - Engine: the boundary type exposing the list, lookup, and analytics
    operations consumed by the HTTP layer
  - Filters: per-table optional-field predicates combined by logical AND
  - Page: offset/limit pagination over the store's deterministic scan order
  - Analytics: full-dataset statistics, memoized for the process lifetime

Error model:

All failures are classified into two sentinel errors and returned as values,
never as panics:

  - ErrNotFound: a single-entity lookup has no match
  - ErrInvalidParameter: negative pagination values, a limit above the
    configured ceiling, or rating bounds outside [0, 5]

An empty filtered list is NOT an error; it is an empty page with total=0.
A min_rating greater than max_rating (both within range) also yields an empty
result rather than an error, matching the behavior of plain range predicates.

Concurrency:

The engine is stateless beyond the store reference and the memoized analytics
result; the store is immutable after load, so every operation is safe for
unlimited concurrent use without locking.
*/
package query
