package tasks

import (
	"context"

	"github.com/dhkim-dev/cinewish/internal/models"
)

// FetchPage fetches one page of movies from some catalog query.
//
// Pager and Feed are parameterized over this rather than the full catalog
// service so any endpoint (popular, search, discover, ...) can drive a list.
type FetchPage func(ctx context.Context, page int) (*models.Paged[models.Movie], error)
