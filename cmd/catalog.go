package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nextsound/nextsound/internal/catalog"
	"github.com/nextsound/nextsound/internal/shared"
)

// Browse prints a bucketed catalog listing.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	category := cmd.String("category")
	kind := cmd.String("type")

	r.logger.Info("browsing catalog", "category", category, "type", kind, "live", r.config.Live())

	env := r.selector.Browse(ctx, category, kind)
	if env.Err != nil {
		return fmt.Errorf("browse failed: %w", env.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(env.Data, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%s / %s (%d tracks)", category, kind, len(env.Data.Results)))
	r.printTracks(env.Data.Results)
	return nil
}

// Search runs a free-text search and prints the ranked results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.Args().First()
	if query == "" {
		return fmt.Errorf("%w: query argument is required", shared.ErrInvalidInput)
	}

	r.logger.Info("searching", "query", query, "live", r.config.Live())

	env := r.selector.Search(ctx, query, int(cmd.Int("limit")))
	if env.Err != nil {
		return fmt.Errorf("search failed: %w", env.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(env.Data, cmd.Bool("pretty"))
	}

	if len(env.Data.Results) == 0 {
		r.writePlainln("No results for %q", query)
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	r.printTracks(env.Data.Results)
	return nil
}

// Similar prints tracks related to the given one.
func (r *Runner) Similar(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	env := r.selector.Similar(ctx, id)
	if env.Err != nil {
		return fmt.Errorf("similar lookup failed: %w", env.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(env.Data, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Similar to %s", id))
	r.printTracks(env.Data.Results)
	return nil
}

// Track prints a single track.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("%w: track id argument is required", shared.ErrInvalidInput)
	}

	env := r.selector.Get(ctx, id)
	if env.Err != nil {
		return fmt.Errorf("track lookup failed: %w", env.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(env.Data, cmd.Bool("pretty"))
	}

	t := env.Data
	r.writePlainHeader(t.DisplayTitle())
	r.writePlain("Artist:     %s\n", t.Artist)
	r.writePlain("Album:      %s\n", t.Album)
	if t.Year > 0 {
		r.writePlain("Year:       %d\n", t.Year)
	}
	if t.Genre != "" {
		r.writePlain("Genre:      %s\n", t.Genre)
	}
	r.writePlain("Popularity: %d/100\n", t.Popularity)
	r.writePlain("Duration:   %d:%02d\n", t.DurationMS/60000, (t.DurationMS/1000)%60)
	return nil
}

func (r *Runner) printTracks(tracks []catalog.Track) {
	for i, t := range tracks {
		line := fmt.Sprintf("%2d. %s — %s", i+1, t.DisplayTitle(), t.Artist)
		if t.Year > 0 {
			line = fmt.Sprintf("%s (%d)", line, t.Year)
		}
		r.writePlain("%s\n", line)
	}
}
