package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/erazemk/track/internal/api"
	"github.com/erazemk/track/internal/web"
)

type serveCmd struct {
	common
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the web interface and JSON API" }
func (*serveCmd) Usage() string {
	return `track serve [-d <db>] [-a <addr>] [-l <log>]

  Serves the web interface on / and the JSON API on /api/.
  The database is created on first run.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.addr, "addr", ":8080", "listen address")
	f.StringVar(&c.addr, "a", ":8080", "listen address (shorthand)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	a, closeAll, err := c.open(ctx, slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeAll()

	// Set up routers.
	apiRouter := api.NewRouter(a)
	webRouter, err := web.NewRouter(a)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		return subcommands.ExitFailure
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              c.addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", c.addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		return subcommands.ExitFailure
	}

	slog.Info("server stopped, closing database")
	return subcommands.ExitSuccess
}
