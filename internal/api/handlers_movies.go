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

// ListMovies handles movie list requests
//
// @Summary List movies
// @Description Returns a paginated page of the movie table, optionally narrowed by title substring, genre, or movieId
// @Tags Movies
// @Accept json
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param genre query string false "Case-insensitive exact genre match"
// @Param movie_id query int false "Exact movieId match"
// @Param limit query int false "Maximum rows per page" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.MovieListResponse} "Movies retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	page, err := h.pageFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	movieID, err := int64QueryParam(r, "movie_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	filter := query.MovieFilter{
		Title:   r.URL.Query().Get("title"),
		Genre:   r.URL.Query().Get("genre"),
		MovieID: movieID,
	}

	result, err := h.engine.ListMovies(filter, page)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, result, start)
}

// GetMovie handles single movie detail requests
//
// @Summary Get a movie with its ratings, tags, and link
// @Description Returns one movie by movieId joined with every rating and tag that references it plus its external identifiers
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie_id path int true "Movie identifier"
// @Success 200 {object} models.APIResponse{data=models.MovieDetail} "Movie retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid movie identifier"
// @Failure 404 {object} models.APIResponse "Movie not found"
// @Router /api/v1/movies/{movie_id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	movieID, err := pathID(chi.URLParam(r, "movie_id"), "movie_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	detail, err := h.engine.GetMovie(movieID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, detail, start)
}
