package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CacheStats prints aggregate size and item count for the offline cache.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	stats := r.store.Stats()

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Offline Cache")
	if !stats.Enabled {
		r.writePlain("Cache is disabled.\n")
		return nil
	}

	r.writePlain("Entries: %d\n", stats.Items)
	r.writePlain("Size:    %s\n", formatBytes(stats.Size))
	return nil
}

// CacheClear removes every cached response.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	before := r.store.Stats()
	r.store.Clear()
	r.logger.Info("cache cleared", "removed", before.Items)

	r.writePlainln("✓ Removed %d cached entries", before.Items)
	return nil
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
