// This is the main entry point of the Solitude application.
// It is responsible for loading configuration, wiring the persistence
// layer and the stores into the application composition, and dispatching
// into the CLI front-end. Interrupts cancel whatever simulated round trip
// is in flight through the root context.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	// `godotenv` loads environment variables from a .env file, useful for
	// development. In production, variables are usually set directly.
	"github.com/joho/godotenv"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/cli"
	"github.com/syedOmegaPrime/SolitudeFinalProject/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	// Ctrl+C cancels in-flight simulated round trips (login, checkout)
	// instead of killing the process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.New(application)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
