package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nextsound/nextsound/internal/server"
)

// Serve runs the HTTP JSON facade until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(r.config, r.selector, r.store, r.logger)

	r.writePlain("→ Serving catalog API on %s:%d (live=%v)\n", r.config.Server.Host, r.config.Server.Port, r.config.Live())
	return srv.Start(ctx)
}
