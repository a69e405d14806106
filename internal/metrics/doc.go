// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

// Package metrics provides Prometheus metrics collection for observability.
//
// Metrics are exposed at the /metrics endpoint in Prometheus text format:
//
//	curl http://localhost:8080/metrics
//
// HTTP metrics:
//   - api_requests_total (counter): method, endpoint, status
//   - api_request_duration_seconds (histogram): method, endpoint
//   - api_active_requests (gauge)
//
// Engine metrics:
//   - query_duration_seconds (histogram): operation
//
// Dataset metrics:
//   - dataset_rows (gauge): table — set once after load, constant thereafter
//   - dataset_load_duration_seconds (gauge)
package metrics
