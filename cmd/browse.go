package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dhkim-dev/cinewish/internal/catalog"
	"github.com/dhkim-dev/cinewish/internal/formatter"
	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
	"github.com/dhkim-dev/cinewish/internal/store"
	"github.com/dhkim-dev/cinewish/internal/tasks"
	"github.com/urfave/cli/v3"
)

// fetchFor maps a browse list name onto its catalog accessor.
func (r *Runner) fetchFor(name string) (tasks.FetchPage, error) {
	switch name {
	case "popular":
		return r.catalog.Popular, nil
	case "now-playing":
		return r.catalog.NowPlaying, nil
	case "top-rated":
		return r.catalog.TopRated, nil
	case "upcoming":
		return r.catalog.Upcoming, nil
	}
	return nil, fmt.Errorf("%w: unknown list %q", shared.ErrInvalidArgument, name)
}

// writeMoviePage renders one page of movies with wishlist markers and a
// page footer.
func (r *Runner) writeMoviePage(movies []models.Movie, page, totalPages int, useJSON, pretty bool) error {
	if useJSON {
		return r.writeJSON(movies, pretty)
	}

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	wishlist := store.NewWishlist(kv, r.logger)
	r.output.Write(formatter.MovieTable(movies, wishlist.Contains))
	if totalPages > 0 {
		r.writePlain("page %d/%d\n", page, totalPages)
	}
	return nil
}

// Browse fetches and renders one page of the named catalog list.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(); err != nil {
		return err
	}

	fetch, err := r.fetchFor(cmd.Name)
	if err != nil {
		return err
	}

	pager := tasks.NewPager(fetch)
	if err := pager.Go(ctx, cmd.Int("page")); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeMoviePage(pager.Movies(), pager.Page(), pager.TotalPages(), cmd.Bool("json"), cmd.Bool("pretty"))
}

// Discover fetches genre-filtered discovery results.
func (r *Runner) Discover(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(); err != nil {
		return err
	}

	opts := catalog.DiscoverOpts{SortBy: cmd.String("sort-by")}
	if genre := cmd.Int("genre"); genre > 0 {
		opts.GenreIDs = []int{genre}
	}

	fetch := func(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
		opts.Page = page
		return r.catalog.Discover(ctx, opts)
	}

	pager := tasks.NewPager(fetch)
	if err := pager.Go(ctx, cmd.Int("page")); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeMoviePage(pager.Movies(), pager.Page(), pager.TotalPages(), cmd.Bool("json"), cmd.Bool("pretty"))
}

// Search runs a free-text catalog search, accumulating the requested number
// of pages and applying client-side refinement. The query is recorded in the
// search history; a blank query just prints the recent queries.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	history := store.NewSearchHistory(kv, r.logger)

	if query == "" {
		r.writePlain("enter a query; recent searches:\n")
		for _, q := range history.Queries() {
			r.writePlain("  %s\n", q)
		}
		return nil
	}

	if err := r.requireCatalog(); err != nil {
		return err
	}

	sortKey, err := tasks.ParseSortKey(cmd.String("sort"))
	if err != nil {
		return err
	}

	history.Add(query)

	feed := tasks.NewFeed(func(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
		return r.catalog.Search(ctx, query, page)
	})

	pages := cmd.Int("pages")
	if pages < 1 {
		pages = 1
	}
	for i := 0; i < pages && feed.HasMore(); i++ {
		if _, err := feed.LoadMore(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	filters := tasks.Filters{
		GenreID:   cmd.Int("genre"),
		MinRating: cmd.Float("min-rating"),
		Year:      cmd.Int("year"),
	}
	movies := tasks.Refine(feed.Movies(), filters, sortKey)

	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	wishlist := store.NewWishlist(kv, r.logger)
	r.output.Write(formatter.MovieTable(movies, wishlist.Contains))
	r.writePlain("%d results (%d pages loaded)\n", len(movies), feed.Page())
	return nil
}

// Movie shows a single movie's detail record, or its recommendations.
func (r *Runner) Movie(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(); err != nil {
		return err
	}

	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be a number", shared.ErrInvalidArgument)
	}

	if cmd.Bool("recommend") {
		result, err := r.catalog.Recommendations(ctx, id, 1)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
		return r.writeMoviePage(result.Results, result.Page, result.TotalPages, cmd.Bool("json"), cmd.Bool("pretty"))
	}

	detail, err := r.catalog.Movie(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	poster := r.catalog.ImageURL(detail.PosterPath, catalog.ImageW500)
	r.output.Write(formatter.MovieDetailText(detail, poster))
	return nil
}

// Genres lists the catalog's movie genres.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(); err != nil {
		return err
	}

	genres, err := r.catalog.Genres(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, true)
	}

	r.output.Write(formatter.GenreTable(genres))
	return nil
}
