// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movielens-api/internal/query"
)

// ListTags handles tag list requests
//
// @Summary List tags
// @Description Returns a paginated page of the tag table, optionally narrowed by userId, movieId, or a tag text substring
// @Tags Tags
// @Accept json
// @Produce json
// @Param user_id query int false "Exact userId match"
// @Param movie_id query int false "Exact movieId match"
// @Param tag query string false "Case-insensitive tag text substring"
// @Param limit query int false "Maximum rows per page" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.TagListResponse} "Tags retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	start := time.Now()

	page, err := h.pageFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	filter := query.TagFilter{Tag: r.URL.Query().Get("tag")}
	if filter.UserID, err = int64QueryParam(r, "user_id"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if filter.MovieID, err = int64QueryParam(r, "movie_id"); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	result, err := h.engine.ListTags(filter, page)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, result, start)
}

// GetTag handles single tag lookup requests
//
// @Summary Get a tag by its composite key
// @Description Returns the tag one user applied to one movie, addressed by (userId, movieId, tag text); the tag text must match exactly
// @Tags Tags
// @Accept json
// @Produce json
// @Param user_id path int true "User identifier"
// @Param movie_id path int true "Movie identifier"
// @Param tag_text path string true "Exact tag text (URL-encoded)"
// @Success 200 {object} models.APIResponse{data=models.Tag} "Tag retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid identifiers"
// @Failure 404 {object} models.APIResponse "Tag not found"
// @Router /api/v1/tags/{user_id}/{movie_id}/{tag_text} [get]
func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
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

	// Tag text may contain spaces and punctuation; chi leaves the segment
	// percent-encoded when the raw path carried encoded characters.
	tagText := chi.URLParam(r, "tag_text")
	if decoded, decErr := url.PathUnescape(tagText); decErr == nil {
		tagText = decoded
	}

	tag, err := h.engine.GetTag(userID, movieID, tagText)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, tag, start)
}
