package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var storage cache.Storage
	if config.Cache.Enabled {
		path := config.Cache.Path
		if path == "" {
			path = "nextsound-cache.db"
		}
		if s, err := cache.NewSQLiteStorage(path); err == nil {
			storage = s
			defer s.Close()
		} else {
			logger.Warn("failed to open cache database, caching disabled", "error", err)
		}
	}
	store := cache.NewStore(storage, storage != nil, logger)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Cache:  store,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "nextsound",
		Usage:    "Browse and search the music catalog, online or offline",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			logger.Error(err.Error())
			os.Exit(2)
		}
		logger.Fatalf("application error: %v", err)
	}
}
