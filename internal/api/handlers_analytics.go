// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"
	"time"
)

// Analytics handles dataset statistics requests
//
// @Summary Get dataset statistics
// @Description Returns entity counts, the rating value distribution, per-movie and per-user averages, most-rated and most-tagged movies, and genre and tag frequency rankings over the whole dataset
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.AnalyticsResponse} "Analytics retrieved successfully"
// @Router /api/v1/analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	respondSuccess(w, h.engine.Analytics(), start)
}
