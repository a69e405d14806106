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
	"github.com/tomtom215/movielens-api/internal/validation"
)

// ratingListParams carries the rating range bounds for struct validation.
// The engine re-checks the bounds, but validating here produces field-level
// error details in the response.
type ratingListParams struct {
	MinRating *float64 `validate:"omitempty,gte=0,lte=5"`
	MaxRating *float64 `validate:"omitempty,gte=0,lte=5"`
}

// ListRatings handles rating list requests
//
// @Summary List ratings
// @Description Returns a paginated page of the rating table, optionally narrowed by userId, movieId, or a rating value range
// @Tags Ratings
// @Accept json
// @Produce json
// @Param user_id query int false "Exact userId match"
// @Param movie_id query int false "Exact movieId match"
// @Param min_rating query number false "Inclusive lower bound on the rating value (0 to 5)"
// @Param max_rating query number false "Inclusive upper bound on the rating value (0 to 5)"
// @Param limit query int false "Maximum rows per page" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.RatingListResponse} "Ratings retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/ratings [get]
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	page, err := h.pageFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	var filter query.RatingFilter
	if filter.UserID, err = int64QueryParam(r, "user_id"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if filter.MovieID, err = int64QueryParam(r, "movie_id"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if filter.MinRating, err = floatQueryParam(r, "min_rating"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if filter.MaxRating, err = floatQueryParam(r, "max_rating"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	params := ratingListParams{MinRating: filter.MinRating, MaxRating: filter.MaxRating}
	if reqErr := validation.ValidateStruct(&params); reqErr != nil {
		respondError(w, http.StatusBadRequest, codeValidation, reqErr.Error(), reqErr.Details())
		return
	}

	result, err := h.engine.ListRatings(filter, page)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, result, start)
}

// GetRating handles single rating lookup requests
//
// @Summary Get a rating by its composite key
// @Description Returns the rating one user gave one movie, addressed by (userId, movieId)
// @Tags Ratings
// @Accept json
// @Produce json
// @Param user_id path int true "User identifier"
// @Param movie_id path int true "Movie identifier"
// @Success 200 {object} models.APIResponse{data=models.Rating} "Rating retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid identifiers"
// @Failure 404 {object} models.APIResponse "Rating not found"
// @Router /api/v1/ratings/{user_id}/{movie_id} [get]
func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	userID, err := pathID(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	movieID, err := pathID(chi.URLParam(r, "movie_id"), "movie_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	rating, err := h.engine.GetRating(userID, movieID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, rating, start)
}
