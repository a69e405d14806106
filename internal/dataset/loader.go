// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

// Package dataset loads the four MovieLens CSV files into memory.
//
// Parsing is delegated to DuckDB's CSV reader through database/sql: each file
// is scanned with an explicit column specification (the auto-detector would
// coerce zero-padded imdbIds to integers) from an in-memory DuckDB instance
// that is discarded once the rows are copied out.
//
// Referential integrity between the files is deliberately NOT validated:
// a rating or tag may reference a movieId with no movie row. Such gaps are
// tolerated at load time and resolved lazily by the query engine.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/movielens-api/internal/config"
	"github.com/tomtom215/movielens-api/internal/logging"
	"github.com/tomtom215/movielens-api/internal/metrics"
	"github.com/tomtom215/movielens-api/internal/models"
	"github.com/tomtom215/movielens-api/internal/store"
)

// noGenres is the dataset's placeholder for movies without genre labels.
const noGenres = "(no genres listed)"

// Load reads movies.csv, ratings.csv, tags.csv, and links.csv from the
// configured directory and returns the parsed tables. The tables are handed
// to store.New unordered; the store owns the ordering contract.
func Load(ctx context.Context, cfg config.DatasetConfig) (store.Tables, error) {
	var tables store.Tables
	start := time.Now()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return tables, fmt.Errorf("opening duckdb: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing loader database")
		}
	}()

	if tables.Movies, err = loadMovies(ctx, db, filepath.Join(cfg.Dir, "movies.csv")); err != nil {
		return tables, err
	}
	if tables.Ratings, err = loadRatings(ctx, db, filepath.Join(cfg.Dir, "ratings.csv")); err != nil {
		return tables, err
	}
	if tables.Tags, err = loadTags(ctx, db, filepath.Join(cfg.Dir, "tags.csv")); err != nil {
		return tables, err
	}
	if tables.Links, err = loadLinks(ctx, db, filepath.Join(cfg.Dir, "links.csv")); err != nil {
		return tables, err
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(len(tables.Movies), len(tables.Ratings), len(tables.Tags), len(tables.Links), elapsed)
	logging.Info().
		Int("movies", len(tables.Movies)).
		Int("ratings", len(tables.Ratings)).
		Int("tags", len(tables.Tags)).
		Int("links", len(tables.Links)).
		Dur("elapsed", elapsed).
		Msg("Dataset loaded")

	return tables, nil
}

func loadMovies(ctx context.Context, db *sql.DB, path string) ([]models.Movie, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT movieId, title, genres
		FROM read_csv(?, header = true,
			columns = {'movieId': 'BIGINT', 'title': 'VARCHAR', 'genres': 'VARCHAR'})`,
		path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		var genres sql.NullString
		if err := rows.Scan(&m.MovieID, &m.Title, &genres); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		m.Genres = splitGenres(genres.String)
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func loadRatings(ctx context.Context, db *sql.DB, path string) ([]models.Rating, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT userId, movieId, rating, timestamp
		FROM read_csv(?, header = true,
			columns = {'userId': 'BIGINT', 'movieId': 'BIGINT', 'rating': 'DOUBLE', 'timestamp': 'BIGINT'})`,
		path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Rating, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

func loadTags(ctx context.Context, db *sql.DB, path string) ([]models.Tag, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT userId, movieId, tag, timestamp
		FROM read_csv(?, header = true,
			columns = {'userId': 'BIGINT', 'movieId': 'BIGINT', 'tag': 'VARCHAR', 'timestamp': 'BIGINT'})`,
		path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.UserID, &t.MovieID, &t.Tag, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func loadLinks(ctx context.Context, db *sql.DB, path string) ([]models.Link, error) {
	// imdbId is zero-padded in the dataset, so it must stay VARCHAR;
	// tmdbId is nullable.
	rows, err := db.QueryContext(ctx, `
		SELECT movieId, imdbId, tmdbId
		FROM read_csv(?, header = true,
			columns = {'movieId': 'BIGINT', 'imdbId': 'VARCHAR', 'tmdbId': 'BIGINT'})`,
		path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var l models.Link
		var imdb sql.NullString
		var tmdb sql.NullInt64
		if err := rows.Scan(&l.MovieID, &imdb, &tmdb); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		l.ImdbID = imdb.String
		if tmdb.Valid {
			v := tmdb.Int64
			l.TmdbID = &v
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// splitGenres splits the pipe-delimited genre string into a set. The
// "(no genres listed)" placeholder and empty segments yield an empty set.
func splitGenres(raw string) []string {
	if raw == "" || raw == noGenres {
		return nil
	}
	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
