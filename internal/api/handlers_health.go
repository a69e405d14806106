// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movielens-api/internal/models"
)

// Health handles health check requests
//
// @Summary Health check
// @Description Returns service health, version, uptime, and the size of the loaded dataset
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "Service is healthy"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	movies, ratings, tags, links := h.engine.Counts()
	respondSuccess(w, &models.HealthResponse{
		Status:        "healthy",
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		MovieCount:    movies,
		RatingCount:   ratings,
		TagCount:      tags,
		LinkCount:     links,
	}, start)
}
