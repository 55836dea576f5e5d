package main

import (
	"context"
	"errors"
	"os"

	"github.com/dhkim-dev/cinewish/internal/catalog"
	"github.com/dhkim-dev/cinewish/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var catalogService catalog.Service
	if config.TMDB.APIKey != "" || config.TMDB.ReadAccessToken != "" {
		if svc, err := catalog.NewTMDBClient(catalog.TMDBOpts{
			BaseURL:         config.TMDB.BaseURL,
			ImageBaseURL:    config.TMDB.ImageBaseURL,
			APIKey:          config.TMDB.APIKey,
			ReadAccessToken: config.TMDB.ReadAccessToken,
			Language:        config.TMDB.Language,
			Region:          config.TMDB.Region,
			RateLimit:       config.Client.RateLimit,
			Logger:          logger,
		}); err == nil {
			catalogService = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalogService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "cinewish",
		Usage:    "Browse the TMDB catalog and keep a local movie wishlist",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
