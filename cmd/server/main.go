package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/golazoapps/mundialito/internal/agent"
	"github.com/golazoapps/mundialito/internal/config"
	"github.com/golazoapps/mundialito/internal/server"
	"github.com/golazoapps/mundialito/internal/worldcup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Reference data: fetched from the data API, cached in memory,
	// loaded lazily on the first game.
	client := worldcup.NewClient(cfg.DataAPIURL)
	cache := worldcup.NewCache(client, logger)
	responder := agent.New(cache, client)

	srv := server.New(cfg.HTTPAddr, logger, cache, client, responder)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr, "data_api", cfg.DataAPIURL)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
