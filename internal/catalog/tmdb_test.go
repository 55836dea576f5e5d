package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
)

// newTestServer serves a canned page payload and records the last request.
func newTestServer(t *testing.T) (*httptest.Server, *http.Request) {
	t.Helper()

	last := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = *r

		page := models.Paged[models.Movie]{
			Page:         1,
			TotalPages:   3,
			TotalResults: 6,
			Results:      []models.Movie{{ID: 1, Title: "Dune"}, {ID: 2, Title: "Arrival"}},
		}
		json.NewEncoder(w).Encode(page)
	}))
	t.Cleanup(srv.Close)

	return srv, last
}

func newTestClient(t *testing.T, opts TMDBOpts) *TMDBClient {
	t.Helper()

	client, err := NewTMDBClient(opts)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewTMDBClient(t *testing.T) {
	t.Run("Requires A Credential", func(t *testing.T) {
		_, err := NewTMDBClient(TMDBOpts{})
		if !errors.Is(err, shared.ErrMissingAPIKey) {
			t.Errorf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("API Key Alone Is Enough", func(t *testing.T) {
		if _, err := NewTMDBClient(TMDBOpts{APIKey: "k"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Token Alone Is Enough", func(t *testing.T) {
		if _, err := NewTMDBClient(TMDBOpts{ReadAccessToken: "tok"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestTMDBClientRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("API Key Goes In Query String", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "secret-key"})

		if _, err := client.Popular(ctx, 1); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		query := last.URL.Query()
		if query.Get("api_key") != "secret-key" {
			t.Errorf("expected api_key param, got %q", query.Get("api_key"))
		}
		if last.Header.Get("Authorization") != "" {
			t.Error("api-key auth should not set a bearer header")
		}
	})

	t.Run("Read Access Token Goes In Bearer Header", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, ReadAccessToken: "v4-token"})

		if _, err := client.Popular(ctx, 1); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		if got := last.Header.Get("Authorization"); got != "Bearer v4-token" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if last.URL.Query().Get("api_key") != "" {
			t.Error("token auth should not send an api_key param")
		}
	})

	t.Run("Token Wins Over API Key", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k", ReadAccessToken: "tok"})

		client.Popular(ctx, 1)
		if last.URL.Query().Get("api_key") != "" {
			t.Error("api_key should be dropped when a token is configured")
		}
	})

	t.Run("Locale Params Are Always Sent", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		client.Popular(ctx, 2)
		query := last.URL.Query()
		if query.Get("language") != "ko-KR" {
			t.Errorf("expected default language, got %q", query.Get("language"))
		}
		if query.Get("region") != "KR" {
			t.Errorf("expected default region, got %q", query.Get("region"))
		}
		if query.Get("page") != "2" {
			t.Errorf("expected page 2, got %q", query.Get("page"))
		}
	})

	t.Run("Page Defaults To One", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		client.Popular(ctx, 0)
		if last.URL.Query().Get("page") != "1" {
			t.Errorf("expected page 1, got %q", last.URL.Query().Get("page"))
		}
	})

	t.Run("List Endpoints Hit Their Paths", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		calls := []struct {
			name string
			call func() error
			path string
		}{
			{"Popular", func() error { _, err := client.Popular(ctx, 1); return err }, "/movie/popular"},
			{"NowPlaying", func() error { _, err := client.NowPlaying(ctx, 1); return err }, "/movie/now_playing"},
			{"TopRated", func() error { _, err := client.TopRated(ctx, 1); return err }, "/movie/top_rated"},
			{"Upcoming", func() error { _, err := client.Upcoming(ctx, 1); return err }, "/movie/upcoming"},
		}

		for _, tc := range calls {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.call(); err != nil {
					t.Fatalf("request failed: %v", err)
				}
				if last.URL.Path != tc.path {
					t.Errorf("expected path %s, got %s", tc.path, last.URL.Path)
				}
			})
		}
	})

	t.Run("Search Sends Query", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		result, err := client.Search(ctx, "dune part two", 1)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if last.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", last.URL.Path)
		}
		if last.URL.Query().Get("query") != "dune part two" {
			t.Errorf("unexpected query param: %q", last.URL.Query().Get("query"))
		}
		if len(result.Results) != 2 || result.TotalPages != 3 {
			t.Errorf("unexpected page: %+v", result)
		}
	})

	t.Run("Discover Joins Genres", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		_, err := client.Discover(ctx, DiscoverOpts{Page: 1, GenreIDs: []int{28, 12}, SortBy: "popularity.desc"})
		if err != nil {
			t.Fatalf("discover failed: %v", err)
		}

		query := last.URL.Query()
		if query.Get("with_genres") != "28,12" {
			t.Errorf("unexpected with_genres: %q", query.Get("with_genres"))
		}
		if query.Get("sort_by") != "popularity.desc" {
			t.Errorf("unexpected sort_by: %q", query.Get("sort_by"))
		}
	})

	t.Run("Movie Detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/movie/438631" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.MovieDetail{
				Movie:   models.Movie{ID: 438631, Title: "Dune"},
				Genres:  []models.Genre{{ID: 878, Name: "Science Fiction"}},
				Runtime: 155,
			})
		}))
		defer srv.Close()

		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})
		detail, err := client.Movie(ctx, 438631)
		if err != nil {
			t.Fatalf("movie failed: %v", err)
		}
		if detail.Title != "Dune" || detail.Runtime != 155 || len(detail.Genres) != 1 {
			t.Errorf("unexpected detail: %+v", detail)
		}
	})

	t.Run("Genres Unwraps Envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":12,"name":"Adventure"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})
		genres, err := client.Genres(ctx)
		if err != nil {
			t.Fatalf("genres failed: %v", err)
		}
		if len(genres) != 2 || genres[0].Name != "Action" {
			t.Errorf("unexpected genres: %v", genres)
		}
	})

	t.Run("Non-2xx Wraps ErrAPIRequest", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "bad"})
		_, err := client.Popular(ctx, 1)
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("Ping Uses Configuration Endpoint", func(t *testing.T) {
		srv, last := newTestServer(t)
		client := newTestClient(t, TMDBOpts{BaseURL: srv.URL, APIKey: "k"})

		if err := client.Ping(ctx); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
		if last.URL.Path != "/configuration" {
			t.Errorf("unexpected path: %s", last.URL.Path)
		}
	})
}

func TestImageURL(t *testing.T) {
	client := newTestClient(t, TMDBOpts{APIKey: "k"})

	t.Run("Empty Path Yields Empty URL", func(t *testing.T) {
		if got := client.ImageURL("", ImageW500); got != "" {
			t.Errorf("expected empty URL, got %q", got)
		}
	})

	t.Run("Builds CDN URL", func(t *testing.T) {
		got := client.ImageURL("/poster.jpg", ImageW500)
		if got != "https://image.tmdb.org/t/p/w500/poster.jpg" {
			t.Errorf("unexpected URL: %q", got)
		}
	})

	t.Run("Default Size", func(t *testing.T) {
		got := client.ImageURL("/poster.jpg", "")
		if got != "https://image.tmdb.org/t/p/w300/poster.jpg" {
			t.Errorf("unexpected URL: %q", got)
		}
	})

	t.Run("Adds Missing Leading Slash", func(t *testing.T) {
		got := client.ImageURL("poster.jpg", ImageW200)
		if got != "https://image.tmdb.org/t/p/w200/poster.jpg" {
			t.Errorf("unexpected URL: %q", got)
		}
	})
}
