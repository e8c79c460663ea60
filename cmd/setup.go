package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/shared"
)

// Setup creates the configuration file and initializes the offline cache
// database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	if !config.Cache.Enabled {
		r.writePlainln("✓ Configuration ready at %s (offline cache disabled)", configPath)
		return nil
	}

	cachePath := config.Cache.Path
	if cachePath == "" {
		cachePath = "nextsound-cache.db"
	}
	if dir := filepath.Dir(cachePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	storage, err := cache.NewSQLiteStorage(cachePath)
	if err != nil {
		return fmt.Errorf("failed to initialize cache database: %w", err)
	}
	defer storage.Close()

	store := cache.NewStore(storage, true, r.logger)
	stats := store.Stats()

	r.writePlainln("✓ Configuration ready at %s", configPath)
	r.writePlainln("✓ Cache database ready at %s (%d entries)", cachePath, stats.Items)
	return nil
}
