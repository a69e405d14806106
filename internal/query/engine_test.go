// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package query

import (
	"errors"
	"testing"

	"github.com/tomtom215/movielens-api/internal/models"
	"github.com/tomtom215/movielens-api/internal/store"
)

const (
	testMaxLimit = 1000
	testTopN     = 10
)

func ptrI64(v int64) *int64     { return &v }
func ptrF64(v float64) *float64 { return &v }

// newTestEngine builds an engine over a small dataset with known shape:
// three movies, ratings from two users, tags on movie 1, links for movies
// 1 and 2 only (movie 3 is a deliberate referential gap on the link side),
// and one rating referencing the nonexistent movie 99.
func newTestEngine() *Engine {
	tmdb1 := int64(862)
	tmdb2 := int64(949)
	tables := store.Tables{
		Movies: []models.Movie{
			{MovieID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children"}},
			{MovieID: 2, Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}},
			{MovieID: 3, Title: "Grumpier Old Men (1995)", Genres: []string{"Comedy", "Romance"}},
		},
		Ratings: []models.Rating{
			{UserID: 5, MovieID: 1, Rating: 4.0, Timestamp: 1000},
			{UserID: 5, MovieID: 2, Rating: 3.5, Timestamp: 1001},
			{UserID: 7, MovieID: 1, Rating: 5.0, Timestamp: 1002},
			{UserID: 7, MovieID: 99, Rating: 1.0, Timestamp: 1003},
		},
		Tags: []models.Tag{
			{UserID: 5, MovieID: 1, Tag: "pixar", Timestamp: 2000},
			{UserID: 7, MovieID: 1, Tag: "Pixar classic", Timestamp: 2001},
		},
		Links: []models.Link{
			{MovieID: 1, ImdbID: "0114709", TmdbID: &tmdb1},
			{MovieID: 2, ImdbID: "0113277", TmdbID: &tmdb2},
		},
	}
	return NewEngine(store.New(tables), testMaxLimit, testTopN)
}

func TestListMovies_NoFilter(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	resp, err := e.ListMovies(MovieFilter{}, Page{Limit: 100})
	if err != nil {
		t.Fatalf("ListMovies: %v", err)
	}
	if resp.Total != 3 || len(resp.Movies) != 3 {
		t.Errorf("total=%d len=%d, want 3/3", resp.Total, len(resp.Movies))
	}
	if resp.Movies[0].MovieID != 1 || resp.Movies[2].MovieID != 3 {
		t.Errorf("movies not in movieId order: %v", resp.Movies)
	}
}

func TestListMovies_Filters(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	tests := []struct {
		name   string
		filter MovieFilter
		want   []int64
	}{
		{"title substring case-insensitive", MovieFilter{Title: "toy"}, []int64{1}},
		{"genre membership", MovieFilter{Genre: "animation"}, []int64{1}},
		{"genre not substring", MovieFilter{Genre: "Anim"}, nil},
		{"movie id exact", MovieFilter{MovieID: ptrI64(2)}, []int64{2}},
		{"combined AND", MovieFilter{Title: "1995", Genre: "Comedy"}, []int64{3}},
		{"no match", MovieFilter{Title: "nonexistent"}, nil},
		{"empty strings unset", MovieFilter{Title: "", Genre: ""}, []int64{1, 2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := e.ListMovies(tc.filter, Page{Limit: 100})
			if err != nil {
				t.Fatalf("ListMovies: %v", err)
			}
			var got []int64
			for _, m := range resp.Movies {
				got = append(got, m.MovieID)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
				}
			}
			if resp.Total != len(tc.want) {
				t.Errorf("total=%d, want %d", resp.Total, len(tc.want))
			}
		})
	}
}

// TestFilterCommutes verifies that applying genre then title equals title
// then genre: both dimensions live in one AND predicate, but the property is
// part of the engine contract, so pin it.
func TestFilterCommutes(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	a, err := e.ListMovies(MovieFilter{Title: "1995", Genre: "Action"}, Page{Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.ListMovies(MovieFilter{Genre: "Action", Title: "1995"}, Page{Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	if a.Total != b.Total || len(a.Movies) != len(b.Movies) {
		t.Errorf("filter order changed result: %d vs %d", a.Total, b.Total)
	}
	for i := range a.Movies {
		if a.Movies[i].MovieID != b.Movies[i].MovieID {
			t.Errorf("row %d differs: %d vs %d", i, a.Movies[i].MovieID, b.Movies[i].MovieID)
		}
	}
}

func TestGetMovie_Detail(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	detail, err := e.GetMovie(1)
	if err != nil {
		t.Fatalf("GetMovie(1): %v", err)
	}
	if detail.Title != "Toy Story (1995)" {
		t.Errorf("title = %q", detail.Title)
	}
	if len(detail.Ratings) != 2 || len(detail.Tags) != 2 {
		t.Errorf("joins: %d ratings, %d tags, want 2/2", len(detail.Ratings), len(detail.Tags))
	}
	if detail.Link == nil || detail.Link.ImdbID != "0114709" {
		t.Errorf("link = %v", detail.Link)
	}
}

// TestGetMovie_LinkGap: a movie without a link row still resolves; the link
// side is simply absent.
func TestGetMovie_LinkGap(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	detail, err := e.GetMovie(3)
	if err != nil {
		t.Fatalf("GetMovie(3): %v", err)
	}
	if detail.Link != nil {
		t.Errorf("link should be nil, got %v", detail.Link)
	}
	if detail.Ratings == nil || detail.Tags == nil {
		t.Error("empty joins must be [] not nil for JSON stability")
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	_, err := e.GetMovie(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListRatings_Filters(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	tests := []struct {
		name   string
		filter RatingFilter
		want   int
	}{
		{"no filter", RatingFilter{}, 4},
		{"by user", RatingFilter{UserID: ptrI64(5)}, 2},
		{"by movie", RatingFilter{MovieID: ptrI64(1)}, 2},
		{"min rating inclusive", RatingFilter{MinRating: ptrF64(4.0)}, 2},
		{"max rating inclusive", RatingFilter{MaxRating: ptrF64(3.5)}, 2},
		{"range", RatingFilter{MinRating: ptrF64(3.0), MaxRating: ptrF64(4.0)}, 2},
		{"min above max is empty", RatingFilter{MinRating: ptrF64(4.0), MaxRating: ptrF64(3.0)}, 0},
		{"user and movie", RatingFilter{UserID: ptrI64(7), MovieID: ptrI64(99)}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := e.ListRatings(tc.filter, Page{Limit: 100})
			if err != nil {
				t.Fatalf("ListRatings: %v", err)
			}
			if resp.Total != tc.want {
				t.Errorf("total = %d, want %d", resp.Total, tc.want)
			}
		})
	}
}

func TestListRatings_BoundsOutOfRange(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	for _, f := range []RatingFilter{
		{MinRating: ptrF64(-0.5)},
		{MaxRating: ptrF64(5.5)},
	} {
		if _, err := e.ListRatings(f, Page{Limit: 100}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("filter %+v: err = %v, want ErrInvalidParameter", f, err)
		}
	}
}

func TestGetRating(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	r, err := e.GetRating(5, 1)
	if err != nil {
		t.Fatalf("GetRating(5,1): %v", err)
	}
	if r.Rating != 4.0 {
		t.Errorf("rating = %v, want 4.0", r.Rating)
	}

	if _, err := e.GetRating(5, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRating(5,3) err = %v, want ErrNotFound", err)
	}
}

func TestListTags_SubstringVsGetTagExact(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	// List filter: substring, case-insensitive. "pixar" matches both tags.
	resp, err := e.ListTags(TagFilter{Tag: "pixar"}, Page{Limit: 100})
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("list total = %d, want 2", resp.Total)
	}

	// Lookup: exact text only.
	if _, err := e.GetTag(7, 1, "pixar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTag exact mismatch err = %v, want ErrNotFound", err)
	}
	tg, err := e.GetTag(7, 1, "Pixar classic")
	if err != nil {
		t.Fatalf("GetTag exact: %v", err)
	}
	if tg.Timestamp != 2001 {
		t.Errorf("tag = %+v", tg)
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	resp, err := e.ListLinks(LinkFilter{}, Page{Limit: 100})
	if err != nil {
		t.Fatalf("ListLinks: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}

	l, err := e.GetLink(2)
	if err != nil {
		t.Fatalf("GetLink(2): %v", err)
	}
	if l.TmdbID == nil || *l.TmdbID != 949 {
		t.Errorf("link = %+v", l)
	}

	if _, err := e.GetLink(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetLink(3) err = %v, want ErrNotFound", err)
	}
}

// TestLookupListConsistency: any entity returned by a lookup also appears in
// the corresponding list when filtered by its exact key.
func TestLookupListConsistency(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	r, err := e.GetRating(7, 1)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := e.ListRatings(RatingFilter{UserID: ptrI64(7), MovieID: ptrI64(1)}, Page{Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 || resp.Ratings[0] != *r {
		t.Errorf("list result %+v does not match lookup %+v", resp.Ratings, r)
	}

	m, err := e.GetMovie(2)
	if err != nil {
		t.Fatal(err)
	}
	mlist, err := e.ListMovies(MovieFilter{MovieID: ptrI64(2)}, Page{Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	if mlist.Total != 1 || mlist.Movies[0].MovieID != m.MovieID {
		t.Errorf("movie list %+v does not match lookup %+v", mlist.Movies, m.Movie)
	}
}

// TestScenario pins the end-to-end example: two movies, one rating, and the
// documented no-rating sentinel in analytics.
func TestScenario(t *testing.T) {
	t.Parallel()

	tables := store.Tables{
		Movies: []models.Movie{
			{MovieID: 1, Title: "Toy Story", Genres: []string{"Animation"}},
			{MovieID: 2, Title: "Heat", Genres: []string{"Action"}},
		},
		Ratings: []models.Rating{
			{UserID: 5, MovieID: 1, Rating: 4.0, Timestamp: 1},
		},
	}
	e := NewEngine(store.New(tables), testMaxLimit, testTopN)

	movies, err := e.ListMovies(MovieFilter{Genre: "Animation"}, Page{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if movies.Total != 1 || movies.Movies[0].MovieID != 1 {
		t.Errorf("genre filter: %+v", movies)
	}

	if _, err := e.GetRating(5, 1); err != nil {
		t.Errorf("GetRating(5,1): %v", err)
	}
	if _, err := e.GetRating(5, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRating(5,2) err = %v, want ErrNotFound", err)
	}

	a := e.Analytics()
	if a.MovieCount != 2 || a.RatingCount != 1 {
		t.Errorf("counts: %d movies, %d ratings", a.MovieCount, a.RatingCount)
	}
	if a.MovieAverages[0].Average == nil || *a.MovieAverages[0].Average != 4.0 {
		t.Errorf("movie 1 average = %v, want 4.0", a.MovieAverages[0].Average)
	}
	if a.MovieAverages[1].Average != nil {
		t.Errorf("movie 2 average = %v, want nil sentinel", a.MovieAverages[1].Average)
	}
}
