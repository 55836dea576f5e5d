// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// pageFlags are shared by all paged list commands.
func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Page number to fetch",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// setupCommand initializes the config file and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config.toml and initialize the local database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles local account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage local accounts and the login session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new local account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "confirm",
						Usage: "Password confirmation (defaults to --password)",
					},
					&cli.BoolFlag{
						Name:  "accept-terms",
						Usage: "Accept the terms of use",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Log in with a registered account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email (defaults to the remembered email)",
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Account password",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "remember",
						Usage: "Remember this email for future logins",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Delete the current session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session and verify catalog credentials",
				Action: r.AuthStatus,
			},
		},
	}
}

// browseCommand exposes the paged catalog lists
func browseCommand(r *Runner) *cli.Command {
	lists := []struct {
		name    string
		aliases []string
		usage   string
	}{
		{"popular", []string{"pop"}, "Popular movies"},
		{"now-playing", []string{"now"}, "Movies currently in theaters"},
		{"top-rated", []string{"top"}, "Top-rated movies"},
		{"upcoming", []string{"up"}, "Upcoming releases"},
	}

	commands := []*cli.Command{}
	for _, l := range lists {
		commands = append(commands, &cli.Command{
			Name:    l.name,
			Aliases: l.aliases,
			Usage:   l.usage,
			Flags:   pageFlags(),
			Action:  r.Browse,
		})
	}

	commands = append(commands, &cli.Command{
		Name:  "discover",
		Usage: "Genre-filtered discovery",
		Flags: append(pageFlags(),
			&cli.IntFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre id to filter by",
			},
			&cli.StringFlag{
				Name:  "sort-by",
				Usage: "TMDB sort key (e.g. popularity.desc)",
			},
		),
		Action: r.Discover,
	})

	return &cli.Command{
		Name:     "browse",
		Usage:    "Browse paged catalog lists",
		Commands: commands,
	}
}

// searchCommand handles free-text search with client-side refinement
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog (records recent queries)",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Number of result pages to accumulate",
				Value: 1,
			},
			&cli.IntFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Keep only movies with this genre id",
			},
			&cli.FloatFlag{
				Name:  "min-rating",
				Usage: "Keep only movies rated at least this",
			},
			&cli.IntFlag{
				Name:  "year",
				Usage: "Keep only movies released in this year",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort order: relevance, popularity, rating or release",
				Value: "relevance",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// movieCommand shows a single movie's detail or recommendations
func movieCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "movie",
		Usage: "Show a movie's details",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "recommend",
				Usage: "List recommended movies instead of details",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Movie,
	}
}

// genresCommand lists the catalog's genres
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List movie genres",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Genres,
	}
}

// historyCommand manages the recent-searches list
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Manage recent search queries",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Show recent queries, most recent first",
				Action: r.HistoryList,
			},
			{
				Name:  "remove",
				Usage: "Remove a query from the history",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Action: r.HistoryRemove,
			},
			{
				Name:   "clear",
				Usage:  "Clear the whole history",
				Action: r.HistoryClear,
			},
		},
	}
}

// wishlistCommand manages the liked-movies set
func wishlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wishlist",
		Aliases: []string{"wish"},
		Usage:   "Manage the local movie wishlist",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show wishlisted movies",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.WishlistList,
			},
			{
				Name:  "toggle",
				Usage: "Add or remove a movie by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.WishlistToggle,
			},
			{
				Name:  "export",
				Usage: "Export the wishlist to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: csv, markdown or json",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.WishlistExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive movie browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "list",
				Usage: "Catalog list to browse: popular, now-playing, top-rated or upcoming",
				Value: "popular",
			},
		},
		Action: r.TUI,
	}
}
