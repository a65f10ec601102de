// Taskfleet coordination server — exposes the HTTP API and runs the
// background sweeps over the shared task store.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/taskfleet/taskfleet/pkg/api"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/database"
	"github.com/taskfleet/taskfleet/pkg/services"
	"github.com/taskfleet/taskfleet/pkg/sweeper"
	"github.com/taskfleet/taskfleet/pkg/version"
)

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if problems := cfg.Validate(); len(problems) > 0 {
		for _, p := range problems {
			slog.Error("Invalid configuration", "problem", p)
		}
		os.Exit(1)
	}
	if cfg.PermissiveCORS() {
		slog.Warn("CORS is permissive (*); set CORS_ORIGINS for production")
	}
	if !cfg.AuthEnabled() {
		slog.Warn("API_KEY is unset; write operations are unauthenticated")
	}

	slog.Info("Starting taskfleet", "version", version.Full(), "http_port", cfg.HTTPPort)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Background sweeps
	sweeps := sweeper.NewService(
		cfg,
		services.NewTaskService(dbClient.Client, cfg),
		services.NewAgentService(dbClient.Client),
		services.NewRetentionService(dbClient.Client, cfg),
	)
	sweeps.Start(ctx)
	defer sweeps.Stop()

	// HTTP server
	server := api.NewServer(cfg, dbClient)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop accepting requests, then let the sweeps finish their in-flight
	// transactions before the pool is torn down
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	sweeps.Stop()

	slog.Info("Shutdown complete")
}
