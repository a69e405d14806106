// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import (
	"sort"

	"github.com/tomtom215/movielens-api/internal/models"
	"github.com/tomtom215/movielens-api/internal/store"
)

// computeAnalytics builds the full-dataset statistics in a single pass over
// each table. Every ranking has an explicit tie-break (ascending movieId for
// movies, lexicographic for names) so the output is deterministic regardless
// of map iteration order.
func computeAnalytics(s *store.Store, topN int) *models.AnalyticsResponse {
	movies := s.Movies()
	ratings := s.Ratings()
	tags := s.Tags()
	links := s.Links()

	users := make(map[int64]struct{})
	distribution := make(map[float64]int)
	ratingSumByMovie := make(map[int64]float64)
	ratingCountByMovie := make(map[int64]int)
	ratingSumByUser := make(map[int64]float64)
	ratingCountByUser := make(map[int64]int)

	for i := range ratings {
		r := &ratings[i]
		users[r.UserID] = struct{}{}
		distribution[r.Rating]++
		ratingSumByMovie[r.MovieID] += r.Rating
		ratingCountByMovie[r.MovieID]++
		ratingSumByUser[r.UserID] += r.Rating
		ratingCountByUser[r.UserID]++
	}

	tagCountByMovie := make(map[int64]int)
	tagUsage := make(map[string]int)
	for i := range tags {
		t := &tags[i]
		users[t.UserID] = struct{}{}
		tagCountByMovie[t.MovieID]++
		tagUsage[t.Tag]++
	}

	genreUsage := make(map[string]int)
	for i := range movies {
		for _, g := range movies[i].Genres {
			genreUsage[g]++
		}
	}

	resp := &models.AnalyticsResponse{
		MovieCount:  len(movies),
		RatingCount: len(ratings),
		TagCount:    len(tags),
		LinkCount:   len(links),
		UserCount:   len(users),

		RatingDistribution: ratingDistribution(distribution),
		MovieAverages:      movieAverages(movies, ratingSumByMovie, ratingCountByMovie),
		UserAverages:       userAverages(ratingSumByUser, ratingCountByUser),
		MostRatedMovies:    topMovies(s, ratingCountByMovie, topN),
		MostTaggedMovies:   topMovies(s, tagCountByMovie, topN),
		TopGenres:          topNames(genreUsage, topN),
		TopTags:            topNames(tagUsage, topN),
	}
	return resp
}

// ratingDistribution orders the histogram ascending by rating value.
func ratingDistribution(counts map[float64]int) []models.RatingBucket {
	buckets := make([]models.RatingBucket, 0, len(counts))
	for value, count := range counts {
		buckets = append(buckets, models.RatingBucket{Rating: value, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Rating < buckets[j].Rating
	})
	return buckets
}

// movieAverages reports the mean rating of every movie ascending by movieId.
// Movies with no ratings get a nil average (serialized as JSON null).
func movieAverages(movies []models.Movie, sums map[int64]float64, counts map[int64]int) []models.MovieAverage {
	averages := make([]models.MovieAverage, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		entry := models.MovieAverage{MovieID: m.MovieID, Title: m.Title}
		if n := counts[m.MovieID]; n > 0 {
			avg := sums[m.MovieID] / float64(n)
			entry.Average = &avg
			entry.Count = n
		}
		averages = append(averages, entry)
	}
	// movies are already sorted by movieId in the store
	return averages
}

// userAverages reports the mean rating per user ascending by userId. Only
// users with at least one rating appear, so no sentinel is needed.
func userAverages(sums map[int64]float64, counts map[int64]int) []models.UserAverage {
	averages := make([]models.UserAverage, 0, len(counts))
	for userID, n := range counts {
		averages = append(averages, models.UserAverage{
			UserID:  userID,
			Average: sums[userID] / float64(n),
			Count:   n,
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		return averages[i].UserID < averages[j].UserID
	})
	return averages
}

// topMovies ranks movies by activity count descending, ties broken by
// ascending movieId. A movieId with no movie row (referential gap) is ranked
// with an empty title rather than dropped, so counts stay truthful.
func topMovies(s *store.Store, counts map[int64]int, topN int) []models.MovieActivity {
	ranked := make([]models.MovieActivity, 0, len(counts))
	for movieID, count := range counts {
		entry := models.MovieActivity{MovieID: movieID, Count: count}
		if m, ok := s.MovieByID(movieID); ok {
			entry.Title = m.Title
		}
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].MovieID < ranked[j].MovieID
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// topNames ranks (name, count) pairs descending by count, ties broken
// lexicographically by name.
func topNames(usage map[string]int, topN int) []models.NameCount {
	ranked := make([]models.NameCount, 0, len(usage))
	for name, count := range usage {
		ranked = append(ranked, models.NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
