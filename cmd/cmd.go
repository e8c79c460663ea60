// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

// browseCommand lists a catalog bucket.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse a catalog listing",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "category",
				Usage: "Listing category",
				Value: "tracks",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Listing type (latest, popular, hero)",
				Value:   "latest",
			},
		}, jsonFlags()...),
		Action: r.Browse,
	}
}

// searchCommand runs a free-text search.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search tracks, artists and albums",
		ArgsUsage: "<query>",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 20,
			},
		}, jsonFlags()...),
		Action: r.Search,
	}
}

// similarCommand lists tracks related to one track.
func similarCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "similar",
		Usage: "List tracks similar to a given track",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Track ID",
				Required: true,
			},
		}, jsonFlags()...),
		Action: r.Similar,
	}
}

// trackCommand fetches one track.
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "track",
		Usage:     "Show a single track",
		ArgsUsage: "<id>",
		Flags:     append([]cli.Flag{configFlag()}, jsonFlags()...),
		Action:    r.Track,
	}
}

// cacheCommand exposes offline cache observability.
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the offline response cache",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show cache size and item count",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Remove every cached response",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheClear,
			},
		},
	}
}

// serveCommand starts the HTTP JSON facade.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the catalog API over HTTP",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and search interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}

// setupCommand initializes config and cache storage.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the configuration file and cache database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}
