package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dhkim-dev/cinewish/internal/catalog"
	"github.com/dhkim-dev/cinewish/internal/formatter"
	"github.com/dhkim-dev/cinewish/internal/shared"
	"github.com/dhkim-dev/cinewish/internal/store"
	"github.com/urfave/cli/v3"
)

// WishlistList shows the wishlisted movies.
func (r *Runner) WishlistList(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	wishlist := store.NewWishlist(kv, r.logger)
	entries := wishlist.Movies()

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	if len(entries) == 0 {
		r.writePlain("wishlist is empty\n")
		return nil
	}

	for i, e := range entries {
		r.writePlain("%3d. %s  ★%s  #%d\n", i+1, e.Title, shared.FormatRating(e.VoteAverage), e.ID)
	}
	return nil
}

// WishlistToggle adds or removes a movie by id. Adding looks the movie up in
// the catalog to capture the display fields; removal needs no network call.
func (r *Runner) WishlistToggle(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be a number", shared.ErrInvalidArgument)
	}

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	wishlist := store.NewWishlist(kv, r.logger)

	if wishlist.Contains(id) {
		// Remove using the stored entry; the catalog isn't needed.
		for _, e := range wishlist.Movies() {
			if e.ID == id {
				wishlist.Toggle(e)
				r.writePlain("✗ removed %s from wishlist\n", e.Title)
				return nil
			}
		}
	}

	if err := r.requireCatalog(); err != nil {
		return err
	}

	detail, err := r.catalog.Movie(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	wishlist.Toggle(detail.Summary())
	r.logger.Info("wishlisted", "id", id, "title", detail.Title)
	r.writePlain("♥ added %s to wishlist\n", detail.Title)
	return nil
}

// WishlistExport writes the wishlist to a file in the requested format.
func (r *Runner) WishlistExport(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	wishlist := store.NewWishlist(kv, r.logger)

	imageURL := func(path string) string {
		if r.catalog == nil {
			return ""
		}
		return r.catalog.ImageURL(path, catalog.ImageW300)
	}

	path, err := formatter.WriteExport(wishlist.Movies(), cmd.String("format"), cmd.String("output"), imageURL)
	if err != nil {
		return err
	}

	r.logger.Info("wishlist exported", "path", path)
	r.writePlain("✓ exported %d movies to %s\n", wishlist.Len(), path)
	return nil
}

// HistoryList shows recent search queries, most recent first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	history := store.NewSearchHistory(kv, r.logger)
	queries := history.Queries()

	if len(queries) == 0 {
		r.writePlain("no recent searches\n")
		return nil
	}

	for i, q := range queries {
		r.writePlain("%d. %s\n", i+1, q)
	}
	return nil
}

// HistoryRemove removes a single query from the history.
func (r *Runner) HistoryRemove(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	history := store.NewSearchHistory(kv, r.logger)
	history.Remove(query)
	r.writePlain("✓ removed %q\n", query)
	return nil
}

// HistoryClear empties the search history.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	history := store.NewSearchHistory(kv, r.logger)
	history.Clear()
	r.writePlain("✓ history cleared\n")
	return nil
}
