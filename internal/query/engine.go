// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import (
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/movielens-api/internal/metrics"
	"github.com/tomtom215/movielens-api/internal/models"
	"github.com/tomtom215/movielens-api/internal/store"
)

// Engine is the query boundary consumed by the HTTP layer. It wraps the
// immutable store with filtering, pagination, lookup resolution, and
// analytics. All methods are safe for concurrent use.
type Engine struct {
	store    *store.Store
	maxLimit int
	topN     int

	analyticsOnce sync.Once
	analytics     *models.AnalyticsResponse
}

// NewEngine creates an engine over the given store. maxLimit is the
// pagination ceiling; topN is the length of analytics rankings.
func NewEngine(s *store.Store, maxLimit, topN int) *Engine {
	return &Engine{store: s, maxLimit: maxLimit, topN: topN}
}

// instrument records the engine operation duration for Prometheus.
func instrument(op string, start time.Time) {
	metrics.RecordQueryDuration(op, time.Since(start))
}

// ListMovies returns one page of the movie table narrowed by the filter.
func (e *Engine) ListMovies(f MovieFilter, p Page) (*models.MovieListResponse, error) {
	defer instrument("list_movies", time.Now())

	if err := validatePage(p, e.maxLimit); err != nil {
		return nil, err
	}

	page, total := paginate(e.store.Movies(), f.Matches, p)
	return &models.MovieListResponse{
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Movies: page,
	}, nil
}

// GetMovie resolves one movie by movieId and joins its ratings, tags, and
// external link. A referential gap on the link side yields a nil Link, never
// an error for the primary record.
func (e *Engine) GetMovie(movieID int64) (*models.MovieDetail, error) {
	defer instrument("get_movie", time.Now())

	m, ok := e.store.MovieByID(movieID)
	if !ok {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	detail := &models.MovieDetail{
		Movie:   *m,
		Ratings: e.store.RatingsForMovie(movieID),
		Tags:    e.store.TagsForMovie(movieID),
	}
	if detail.Ratings == nil {
		detail.Ratings = []models.Rating{}
	}
	if detail.Tags == nil {
		detail.Tags = []models.Tag{}
	}
	if l, ok := e.store.LinkByMovie(movieID); ok {
		link := *l
		detail.Link = &link
	}
	return detail, nil
}

// ListRatings returns one page of the rating table narrowed by the filter.
func (e *Engine) ListRatings(f RatingFilter, p Page) (*models.RatingListResponse, error) {
	defer instrument("list_ratings", time.Now())

	if err := validatePage(p, e.maxLimit); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	page, total := paginate(e.store.Ratings(), f.Matches, p)
	return &models.RatingListResponse{
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		Ratings: page,
	}, nil
}

// GetRating resolves one rating by its (userId, movieId) composite key.
func (e *Engine) GetRating(userID, movieID int64) (*models.Rating, error) {
	defer instrument("get_rating", time.Now())

	r, ok := e.store.RatingByKey(store.RatingKey{UserID: userID, MovieID: movieID})
	if !ok {
		return nil, fmt.Errorf("%w: rating for user %d and movie %d", ErrNotFound, userID, movieID)
	}
	rating := *r
	return &rating, nil
}

// ListTags returns one page of the tag table narrowed by the filter.
func (e *Engine) ListTags(f TagFilter, p Page) (*models.TagListResponse, error) {
	defer instrument("list_tags", time.Now())

	if err := validatePage(p, e.maxLimit); err != nil {
		return nil, err
	}

	page, total := paginate(e.store.Tags(), f.Matches, p)
	return &models.TagListResponse{
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Tags:   page,
	}, nil
}

// GetTag resolves one tag by its (userId, movieId, tag) composite key.
// The tag text must match exactly; substring semantics apply only to the
// list filter.
func (e *Engine) GetTag(userID, movieID int64, tagText string) (*models.Tag, error) {
	defer instrument("get_tag", time.Now())

	t, ok := e.store.TagByKey(store.TagKey{UserID: userID, MovieID: movieID, Tag: tagText})
	if !ok {
		return nil, fmt.Errorf("%w: tag %q for user %d and movie %d", ErrNotFound, tagText, userID, movieID)
	}
	tag := *t
	return &tag, nil
}

// ListLinks returns one page of the link table narrowed by the filter.
func (e *Engine) ListLinks(f LinkFilter, p Page) (*models.LinkListResponse, error) {
	defer instrument("list_links", time.Now())

	if err := validatePage(p, e.maxLimit); err != nil {
		return nil, err
	}

	page, total := paginate(e.store.Links(), f.Matches, p)
	return &models.LinkListResponse{
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Links:  page,
	}, nil
}

// GetLink resolves a movie's external identifiers by movieId.
func (e *Engine) GetLink(movieID int64) (*models.Link, error) {
	defer instrument("get_link", time.Now())

	l, ok := e.store.LinkByMovie(movieID)
	if !ok {
		return nil, fmt.Errorf("%w: link for movie %d", ErrNotFound, movieID)
	}
	link := *l
	return &link, nil
}

// Counts reports the size of each loaded table.
func (e *Engine) Counts() (movies, ratings, tags, links int) {
	return len(e.store.Movies()), len(e.store.Ratings()), len(e.store.Tags()), len(e.store.Links())
}

// Analytics returns the full-dataset statistics. The result is computed once
// and memoized; the dataset never changes after load, so repeated calls are
// byte-identical by construction.
func (e *Engine) Analytics() *models.AnalyticsResponse {
	defer instrument("analytics", time.Now())

	e.analyticsOnce.Do(func() {
		e.analytics = computeAnalytics(e.store, e.topN)
	})
	return e.analytics
}
