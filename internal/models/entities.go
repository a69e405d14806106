// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package models

import "strings"

// Movie is a single entry of the movies table.
//
// Genres holds the movie's genre set split from the dataset's pipe-delimited
// string. The dataset's "(no genres listed)" placeholder is represented as an
// empty slice, never as a literal genre.
type Movie struct {
	MovieID int64    `json:"movieId"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
}

// HasGenre reports whether the movie carries the given genre.
// Matching is case-insensitive.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Rating is a single entry of the ratings table, uniquely identified by the
// (userId, movieId) pair. Rating values are half-star steps from 0.5 to 5.0.
// Timestamp is seconds since the Unix epoch, as shipped in the dataset.
type Rating struct {
	UserID    int64   `json:"userId"`
	MovieID   int64   `json:"movieId"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// Tag is a single user-applied tag, uniquely identified by the
// (userId, movieId, tag) triple. A user may apply many tags to one movie.
type Tag struct {
	UserID    int64  `json:"userId"`
	MovieID   int64  `json:"movieId"`
	Tag       string `json:"tag"`
	Timestamp int64  `json:"timestamp"`
}

// Link maps a movie to its external identifiers. TmdbID is nullable because
// not every movie has a TMDB entry; ImdbID may be empty for the same reason.
type Link struct {
	MovieID int64  `json:"movieId"`
	ImdbID  string `json:"imdbId"`
	TmdbID  *int64 `json:"tmdbId"`
}

// MovieDetail is the detailed movie view returned by single-movie lookups:
// the movie joined with its ratings, tags, and external link. Ratings and Tags
// are ordered by ascending natural key; Link is nil when the movie has no link
// entry (referential gaps are tolerated, see the query package).
type MovieDetail struct {
	Movie
	Ratings []Rating `json:"ratings"`
	Tags    []Tag    `json:"tags"`
	Link    *Link    `json:"link"`
}
