// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

// Package store holds the four MovieLens tables in memory and exposes
// read-only indexed access to them.
//
// Ordering contract: every table is sorted ascending by its natural key at
// construction (movies and links by movieId, ratings by (userId, movieId),
// tags by (userId, movieId, tag)). Scan order is therefore stable across
// repeated calls and independent of the order rows arrived from the loader.
//
// The store is never mutated after New returns, so it is safe for unlimited
// concurrent reads without locking.
package store

import (
	"sort"
	"strings"

	"github.com/tomtom215/movielens-api/internal/models"
)

// RatingKey uniquely identifies a rating.
type RatingKey struct {
	UserID  int64
	MovieID int64
}

// TagKey uniquely identifies a user-applied tag. The tag text is matched
// exactly (case-sensitive), distinct from the list filter's substring match.
type TagKey struct {
	UserID  int64
	MovieID int64
	Tag     string
}

// Tables is the loader's hand-off: the four parsed tables in arbitrary order.
// Referential integrity between tables is NOT required; a rating or tag may
// reference a movieId with no movie row (resolved lazily at query time).
type Tables struct {
	Movies  []models.Movie
	Ratings []models.Rating
	Tags    []models.Tag
	Links   []models.Link
}

// Store owns the immutable tables plus their key and join indexes.
type Store struct {
	movies  []models.Movie
	ratings []models.Rating
	tags    []models.Tag
	links   []models.Link

	movieByID  map[int64]*models.Movie
	ratingByID map[RatingKey]*models.Rating
	tagByID    map[TagKey]*models.Tag
	linkByID   map[int64]*models.Link

	// Join indexes for the detailed movie view. Slices preserve the
	// table's sorted order.
	ratingsByMovie map[int64][]models.Rating
	tagsByMovie    map[int64][]models.Tag
}

// New builds a Store from loaded tables. Rows are copied into sorted order
// and indexed; duplicate keys keep the last occurrence (the dataset has none,
// but the store must not panic on dirty input).
func New(t Tables) *Store {
	s := &Store{
		movies:  append([]models.Movie(nil), t.Movies...),
		ratings: append([]models.Rating(nil), t.Ratings...),
		tags:    append([]models.Tag(nil), t.Tags...),
		links:   append([]models.Link(nil), t.Links...),

		movieByID:  make(map[int64]*models.Movie, len(t.Movies)),
		ratingByID: make(map[RatingKey]*models.Rating, len(t.Ratings)),
		tagByID:    make(map[TagKey]*models.Tag, len(t.Tags)),
		linkByID:   make(map[int64]*models.Link, len(t.Links)),

		ratingsByMovie: make(map[int64][]models.Rating),
		tagsByMovie:    make(map[int64][]models.Tag),
	}

	sort.Slice(s.movies, func(i, j int) bool {
		return s.movies[i].MovieID < s.movies[j].MovieID
	})
	sort.Slice(s.ratings, func(i, j int) bool {
		a, b := s.ratings[i], s.ratings[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		return a.MovieID < b.MovieID
	})
	sort.Slice(s.tags, func(i, j int) bool {
		a, b := s.tags[i], s.tags[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.MovieID != b.MovieID {
			return a.MovieID < b.MovieID
		}
		return strings.Compare(a.Tag, b.Tag) < 0
	})
	sort.Slice(s.links, func(i, j int) bool {
		return s.links[i].MovieID < s.links[j].MovieID
	})

	for i := range s.movies {
		s.movieByID[s.movies[i].MovieID] = &s.movies[i]
	}
	for i := range s.ratings {
		r := &s.ratings[i]
		s.ratingByID[RatingKey{UserID: r.UserID, MovieID: r.MovieID}] = r
		s.ratingsByMovie[r.MovieID] = append(s.ratingsByMovie[r.MovieID], *r)
	}
	for i := range s.tags {
		tg := &s.tags[i]
		s.tagByID[TagKey{UserID: tg.UserID, MovieID: tg.MovieID, Tag: tg.Tag}] = tg
		s.tagsByMovie[tg.MovieID] = append(s.tagsByMovie[tg.MovieID], *tg)
	}
	for i := range s.links {
		s.linkByID[s.links[i].MovieID] = &s.links[i]
	}

	return s
}

// Movies returns the full movie table in ascending movieId order.
// Callers must not modify the returned slice.
func (s *Store) Movies() []models.Movie { return s.movies }

// Ratings returns the full rating table in ascending (userId, movieId) order.
func (s *Store) Ratings() []models.Rating { return s.ratings }

// Tags returns the full tag table in ascending (userId, movieId, tag) order.
func (s *Store) Tags() []models.Tag { return s.tags }

// Links returns the full link table in ascending movieId order.
func (s *Store) Links() []models.Link { return s.links }

// MovieByID resolves a movie by its primary key.
func (s *Store) MovieByID(movieID int64) (*models.Movie, bool) {
	m, ok := s.movieByID[movieID]
	return m, ok
}

// RatingByKey resolves a rating by its composite key.
func (s *Store) RatingByKey(k RatingKey) (*models.Rating, bool) {
	r, ok := s.ratingByID[k]
	return r, ok
}

// TagByKey resolves a tag by its composite key. Tag text must match exactly.
func (s *Store) TagByKey(k TagKey) (*models.Tag, bool) {
	t, ok := s.tagByID[k]
	return t, ok
}

// LinkByMovie resolves a link by movieId.
func (s *Store) LinkByMovie(movieID int64) (*models.Link, bool) {
	l, ok := s.linkByID[movieID]
	return l, ok
}

// RatingsForMovie returns all ratings of one movie in table order.
// The result is nil when the movie has no ratings.
func (s *Store) RatingsForMovie(movieID int64) []models.Rating {
	return s.ratingsByMovie[movieID]
}

// TagsForMovie returns all tags applied to one movie in table order.
func (s *Store) TagsForMovie(movieID int64) []models.Tag {
	return s.tagsByMovie[movieID]
}
