// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movielens-api/internal/query"
)

// ListLinks handles link list requests
//
// @Summary List links
// @Description Returns a paginated page of the external identifier table, optionally narrowed by movieId
// @Tags Links
// @Accept json
// @Produce json
// @Param movie_id query int false "Exact movieId match"
// @Param limit query int false "Maximum rows per page" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.LinkListResponse} "Links retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/links [get]
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	page, err := h.pageFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	var filter query.LinkFilter
	if filter.MovieID, err = int64QueryParam(r, "movie_id"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	result, err := h.engine.ListLinks(filter, page)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, result, start)
}

// GetLink handles single link lookup requests
//
// @Summary Get a movie's external identifiers
// @Description Returns the IMDb and TMDb identifiers for one movie by movieId
// @Tags Links
// @Accept json
// @Produce json
// @Param movie_id path int true "Movie identifier"
// @Success 200 {object} models.APIResponse{data=models.Link} "Link retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid movie identifier"
// @Failure 404 {object} models.APIResponse "Link not found"
// @Router /api/v1/links/{movie_id} [get]
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	movieID, err := pathID(chi.URLParam(r, "movie_id"), "movie_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	link, err := h.engine.GetLink(movieID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, link, start)
}
