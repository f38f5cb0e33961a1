package main

import (
	"context"

	"wheel-server/internal/bootstrap"
	"wheel-server/internal/config"
	"wheel-server/internal/observability"
	"wheel-server/internal/server"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	if err := srv.Setup(); err != nil {
		deps.Cleanup()
		logger.Fatal(ctx, "failed to configure server", err)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "shutdown failed", err)
	}
}
