package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dhkim-dev/cinewish/internal/shared"
	"github.com/dhkim-dev/cinewish/internal/store"
	"github.com/dhkim-dev/cinewish/internal/tasks"
	"github.com/dhkim-dev/cinewish/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive movie browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(); err != nil {
		return err
	}

	listName := cmd.String("list")
	fetch, err := r.fetchFor(listName)
	if err != nil {
		return err
	}

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/cinewish-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	wishlist := store.NewWishlist(kv, r.logger)
	feed := tasks.NewFeed(fetch)

	model := ui.NewModel(ctx, r.catalog, wishlist, feed, fmt.Sprintf("cinewish · %s", listName))
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
