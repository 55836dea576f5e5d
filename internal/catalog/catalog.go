// Package catalog defines the Service interface for the external movie
// metadata API and its TMDB implementation.
//
// The catalog is read-only and every call is idempotent, so the failure
// policy is deliberately naive: log, wrap, return. No retries, no backoff;
// callers may simply re-invoke.
package catalog

import (
	"context"

	"github.com/dhkim-dev/cinewish/internal/models"
)

// ImageSize enumerates the poster/backdrop size tiers the image CDN serves.
type ImageSize string

const (
	ImageW200     ImageSize = "w200"
	ImageW300     ImageSize = "w300"
	ImageW500     ImageSize = "w500"
	ImageOriginal ImageSize = "original"
)

// DiscoverOpts parameterizes genre-filtered discovery.
type DiscoverOpts struct {
	Page      int
	GenreIDs  []int  // joined with commas into with_genres
	SortBy    string // TMDB sort key, e.g. popularity.desc; empty for API default
}

// Service is the catalog query surface. One accessor per catalog query;
// every accessor forwards a caller-supplied page number (default 1) and fixes
// locale parameters.
type Service interface {
	Popular(ctx context.Context, page int) (*models.Paged[models.Movie], error)
	NowPlaying(ctx context.Context, page int) (*models.Paged[models.Movie], error)
	TopRated(ctx context.Context, page int) (*models.Paged[models.Movie], error)
	Upcoming(ctx context.Context, page int) (*models.Paged[models.Movie], error)
	Discover(ctx context.Context, opts DiscoverOpts) (*models.Paged[models.Movie], error)
	Search(ctx context.Context, query string, page int) (*models.Paged[models.Movie], error)
	Movie(ctx context.Context, id int) (*models.MovieDetail, error)
	Recommendations(ctx context.Context, id, page int) (*models.Paged[models.Movie], error)
	Genres(ctx context.Context) ([]models.Genre, error)

	// Ping performs a cheap configuration call to verify the configured key.
	Ping(ctx context.Context) error

	// ImageURL builds a fully qualified image URL for a poster or backdrop
	// path fragment, or "" when the path is absent (render a placeholder).
	ImageURL(path string, size ImageSize) string

	// Name returns the provider name (e.g. "TMDB").
	Name() string
}
