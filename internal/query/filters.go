// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import (
	"fmt"
	"strings"

	"github.com/tomtom215/movielens-api/internal/models"
)

// Rating values in the dataset are half-star steps within [0.5, 5.0], but the
// filter bounds accept the closed interval [0, 5] like the original API did.
const (
	minRatingBound = 0.0
	maxRatingBound = 5.0
)

// MovieFilter narrows the movie table. Zero values ("" and nil) impose no
// constraint on their dimension; set fields are combined by logical AND.
type MovieFilter struct {
	// Title matches case-insensitively as a substring.
	Title string
	// Genre matches case-insensitively against the movie's genre set.
	Genre string
	// MovieID matches exactly.
	MovieID *int64
}

// Matches reports whether the movie passes every set dimension.
func (f *MovieFilter) Matches(m *models.Movie) bool {
	if f.MovieID != nil && m.MovieID != *f.MovieID {
		return false
	}
	if f.Title != "" && !containsFold(m.Title, f.Title) {
		return false
	}
	if f.Genre != "" && !m.HasGenre(f.Genre) {
		return false
	}
	return true
}

// RatingFilter narrows the rating table. MinRating and MaxRating are
// inclusive bounds; a min above the max yields an empty result, not an error.
type RatingFilter struct {
	UserID    *int64
	MovieID   *int64
	MinRating *float64
	MaxRating *float64
}

// Validate rejects bounds outside the rating domain [0, 5].
func (f *RatingFilter) Validate() error {
	if f.MinRating != nil && (*f.MinRating < minRatingBound || *f.MinRating > maxRatingBound) {
		return fmt.Errorf("%w: min_rating %.2f outside [%.1f, %.1f]",
			ErrInvalidParameter, *f.MinRating, minRatingBound, maxRatingBound)
	}
	if f.MaxRating != nil && (*f.MaxRating < minRatingBound || *f.MaxRating > maxRatingBound) {
		return fmt.Errorf("%w: max_rating %.2f outside [%.1f, %.1f]",
			ErrInvalidParameter, *f.MaxRating, minRatingBound, maxRatingBound)
	}
	return nil
}

// Matches reports whether the rating passes every set dimension.
func (f *RatingFilter) Matches(r *models.Rating) bool {
	if f.UserID != nil && r.UserID != *f.UserID {
		return false
	}
	if f.MovieID != nil && r.MovieID != *f.MovieID {
		return false
	}
	if f.MinRating != nil && r.Rating < *f.MinRating {
		return false
	}
	if f.MaxRating != nil && r.Rating > *f.MaxRating {
		return false
	}
	return true
}

// TagFilter narrows the tag table. Tag matches case-insensitively as a
// substring; the single-entity tag lookup is exact instead (see Engine.GetTag).
type TagFilter struct {
	UserID  *int64
	MovieID *int64
	Tag     string
}

// Matches reports whether the tag passes every set dimension.
func (f *TagFilter) Matches(t *models.Tag) bool {
	if f.UserID != nil && t.UserID != *f.UserID {
		return false
	}
	if f.MovieID != nil && t.MovieID != *f.MovieID {
		return false
	}
	if f.Tag != "" && !containsFold(t.Tag, f.Tag) {
		return false
	}
	return true
}

// LinkFilter narrows the link table.
type LinkFilter struct {
	MovieID *int64
}

// Matches reports whether the link passes the filter.
func (f *LinkFilter) Matches(l *models.Link) bool {
	return f.MovieID == nil || l.MovieID == *f.MovieID
}

// containsFold reports whether substr occurs in s under Unicode case folding.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
