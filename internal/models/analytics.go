// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package models

// AnalyticsResponse is the full-dataset statistics payload. It is computed
// once per process (the dataset never changes after load) and every field
// with list semantics has an explicit, stable order so repeated calls return
// byte-identical JSON.
type AnalyticsResponse struct {
	MovieCount  int `json:"movie_count"`
	RatingCount int `json:"rating_count"`
	TagCount    int `json:"tag_count"`
	LinkCount   int `json:"link_count"`

	// UserCount is the number of distinct userIds across ratings and tags.
	UserCount int `json:"user_count"`

	// RatingDistribution counts ratings per discrete value, ascending by value.
	RatingDistribution []RatingBucket `json:"rating_distribution"`

	// MovieAverages lists the mean rating for every movie, ascending by
	// movieId. Average is null for movies with no ratings.
	MovieAverages []MovieAverage `json:"movie_averages"`

	// UserAverages lists the mean rating per user with at least one rating,
	// ascending by userId.
	UserAverages []UserAverage `json:"user_averages"`

	// MostRatedMovies and MostTaggedMovies are top-N by activity count,
	// ties broken by ascending movieId.
	MostRatedMovies  []MovieActivity `json:"most_rated_movies"`
	MostTaggedMovies []MovieActivity `json:"most_tagged_movies"`

	// TopGenres and TopTags are top-N by usage count, ties broken by
	// lexicographic order of the name.
	TopGenres []NameCount `json:"top_genres"`
	TopTags   []NameCount `json:"top_tags"`
}

// RatingBucket is one bar of the rating distribution histogram.
type RatingBucket struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// MovieAverage is the mean rating of one movie. Average is nil when the movie
// has no ratings; that is the documented "no data" sentinel, serialized as
// JSON null.
type MovieAverage struct {
	MovieID int64    `json:"movieId"`
	Title   string   `json:"title"`
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// UserAverage is the mean rating one user has given.
type UserAverage struct {
	UserID  int64   `json:"userId"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// MovieActivity counts ratings or tags applied to one movie.
type MovieActivity struct {
	MovieID int64  `json:"movieId"`
	Title   string `json:"title"`
	Count   int    `json:"count"`
}

// NameCount is a generic (name, count) pair used for genre and tag rankings.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
