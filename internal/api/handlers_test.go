// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-api/internal/config"
	"github.com/tomtom215/movielens-api/internal/models"
	"github.com/tomtom215/movielens-api/internal/query"
	"github.com/tomtom215/movielens-api/internal/store"
)

func i64(v int64) *int64 { return &v }

// newTestRouter builds the full route tree over a small seeded dataset.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tables := store.Tables{
		Movies: []models.Movie{
			{MovieID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}},
			{MovieID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure", "Children", "Fantasy"}},
			{MovieID: 6, Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}},
		},
		Ratings: []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 964982703},
			{UserID: 1, MovieID: 6, Rating: 4.0, Timestamp: 964982224},
			{UserID: 5, MovieID: 1, Rating: 4.0, Timestamp: 847434962},
			{UserID: 5, MovieID: 2, Rating: 3.5, Timestamp: 847435238},
		},
		Tags: []models.Tag{
			{UserID: 2, MovieID: 1, Tag: "pixar", Timestamp: 1445714994},
			{UserID: 2, MovieID: 6, Tag: "heist", Timestamp: 1445715000},
		},
		Links: []models.Link{
			{MovieID: 1, ImdbID: "0114709", TmdbID: i64(862)},
			{MovieID: 2, ImdbID: "0113497", TmdbID: i64(8844)},
			{MovieID: 6, ImdbID: "0113277", TmdbID: i64(949)},
		},
	}

	cfg := &config.Config{
		API: config.APIConfig{
			DefaultPageSize: 100,
			MaxPageSize:     1000,
			TopN:            10,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}

	engine := query.NewEngine(store.New(tables), cfg.API.MaxPageSize, cfg.API.TopN)
	return NewRouter(engine, cfg).SetupChi()
}

// doRequest performs a request against the router and decodes the envelope.
func doRequest(t *testing.T, router http.Handler, method, target string) (*httptest.ResponseRecorder, *models.APIResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding %s %s: %v (body %q)", method, target, err, rec.Body.String())
	}
	return rec, &envelope
}

// dataAsMap re-marshals the envelope data for field-level assertions.
func dataAsMap(t *testing.T, envelope *models.APIResponse) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshaling data: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	return m
}

func TestHealth(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %q", envelope.Status)
	}

	data := dataAsMap(t, envelope)
	if data["status"] != "healthy" {
		t.Errorf("health status = %v", data["status"])
	}
	if data["movie_count"] != float64(3) || data["rating_count"] != float64(4) {
		t.Errorf("dataset counts = %v/%v", data["movie_count"], data["rating_count"])
	}
}

func TestListMovies(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		name      string
		target    string
		wantTotal float64
	}{
		{"no filter", "/api/v1/movies", 3},
		{"title substring", "/api/v1/movies?title=toy", 1},
		{"genre exact", "/api/v1/movies?genre=adventure", 2},
		{"genre is not substring", "/api/v1/movies?genre=Adv", 0},
		{"movie_id", "/api/v1/movies?movie_id=6", 1},
		{"combined", "/api/v1/movies?title=1995&genre=Action", 1},
		{"no match", "/api/v1/movies?title=zodiac", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, envelope := doRequest(t, router, http.MethodGet, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if data := dataAsMap(t, envelope); data["total"] != tc.wantTotal {
				t.Errorf("total = %v, want %v", data["total"], tc.wantTotal)
			}
		})
	}
}

func TestListMovies_Pagination(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies?limit=2&offset=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataAsMap(t, envelope)
	if data["total"] != float64(3) || data["limit"] != float64(2) || data["offset"] != float64(2) {
		t.Errorf("page metadata = %v/%v/%v", data["total"], data["limit"], data["offset"])
	}
	if movies := data["movies"].([]interface{}); len(movies) != 1 {
		t.Errorf("page length = %d, want 1", len(movies))
	}
}

func TestGetMovie(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataAsMap(t, envelope)
	if data["title"] != "Toy Story (1995)" {
		t.Errorf("title = %v", data["title"])
	}
	if ratings := data["ratings"].([]interface{}); len(ratings) != 2 {
		t.Errorf("joined ratings = %d, want 2", len(ratings))
	}
	if tags := data["tags"].([]interface{}); len(tags) != 1 {
		t.Errorf("joined tags = %d, want 1", len(tags))
	}
	link := data["link"].(map[string]interface{})
	if link["imdbId"] != "0114709" {
		t.Errorf("link imdbId = %v", link["imdbId"])
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if envelope.Status != "error" || envelope.Error == nil || envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestGetMovie_InvalidID(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestListRatings(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantTotal float64
	}{
		{"no filter", "/api/v1/ratings", http.StatusOK, 4},
		{"by user", "/api/v1/ratings?user_id=5", http.StatusOK, 2},
		{"by movie", "/api/v1/ratings?movie_id=1", http.StatusOK, 2},
		{"min rating", "/api/v1/ratings?min_rating=4.0", http.StatusOK, 3},
		{"range", "/api/v1/ratings?min_rating=3.0&max_rating=3.5", http.StatusOK, 1},
		{"inverted range is empty", "/api/v1/ratings?min_rating=4.0&max_rating=3.0", http.StatusOK, 0},
		{"out of bounds", "/api/v1/ratings?min_rating=5.5", http.StatusBadRequest, 0},
		{"malformed bound", "/api/v1/ratings?min_rating=high", http.StatusBadRequest, 0},
		{"malformed user", "/api/v1/ratings?user_id=abc", http.StatusBadRequest, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, envelope := doRequest(t, router, http.MethodGet, tc.target)
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if tc.wantCode != http.StatusOK {
				if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
					t.Errorf("error = %+v", envelope.Error)
				}
				return
			}
			if data := dataAsMap(t, envelope); data["total"] != tc.wantTotal {
				t.Errorf("total = %v, want %v", data["total"], tc.wantTotal)
			}
		})
	}
}

func TestGetRating(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/ratings/5/2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataAsMap(t, envelope)
	if data["rating"] != 3.5 {
		t.Errorf("rating = %v, want 3.5", data["rating"])
	}

	// The composite key is directional: user 2 never rated movie 5.
	rec, envelope = doRequest(t, router, http.MethodGet, "/api/v1/ratings/2/5")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("transposed key status = %d, want 404", rec.Code)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestListTags(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/tags?tag=PIX")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if data := dataAsMap(t, envelope); data["total"] != float64(1) {
		t.Errorf("substring filter total = %v, want 1", data["total"])
	}
}

func TestGetTag(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/tags/2/1/pixar")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if data := dataAsMap(t, envelope); data["tag"] != "pixar" {
		t.Errorf("tag = %v", data["tag"])
	}

	// Lookup is exact, not substring: "pix" matched the list filter above
	// but must miss here.
	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/tags/2/1/pix")
	if rec.Code != http.StatusNotFound {
		t.Errorf("partial tag status = %d, want 404", rec.Code)
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/links?movie_id=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataAsMap(t, envelope)
	if data["total"] != float64(1) {
		t.Fatalf("total = %v, want 1", data["total"])
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/api/v1/links/2")
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup status = %d, want 200", rec.Code)
	}
	data = dataAsMap(t, envelope)
	if data["imdbId"] != "0113497" || data["tmdbId"] != float64(8844) {
		t.Errorf("link = %v", data)
	}
}

func TestAnalytics(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/analytics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataAsMap(t, envelope)
	if data["movie_count"] != float64(3) || data["rating_count"] != float64(4) {
		t.Errorf("counts = %v/%v", data["movie_count"], data["rating_count"])
	}
	if data["user_count"] != float64(2) {
		t.Errorf("user_count = %v, want 2", data["user_count"])
	}
	if dist := data["rating_distribution"].([]interface{}); len(dist) != 2 {
		t.Errorf("rating_distribution = %v", dist)
	}
}

func TestInvalidPagination(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/movies?limit=-1",
		"/api/v1/movies?offset=-1",
		"/api/v1/movies?limit=1001",
		"/api/v1/movies?limit=abc",
	} {
		rec, envelope := doRequest(t, router, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
			continue
		}
		if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("%s: error = %+v", target, envelope.Error)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, target := range []string{"/api/v1/movies", "/api/v1/ratings/1/1", "/api/v1/analytics"} {
		rec, envelope := doRequest(t, router, http.MethodPost, target)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: status = %d, want 405", target, rec.Code)
			continue
		}
		if envelope.Error == nil || envelope.Error.Code != "METHOD_NOT_ALLOWED" {
			t.Errorf("POST %s: error = %+v", target, envelope.Error)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestResponseHeaders(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
