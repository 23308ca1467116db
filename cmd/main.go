package main

//
//  @title           marketdash API
//  @version         1.0
//  @description     Stock dashboard aggregation service (BFF for the market-data backend).
//  @termsOfService  https://github.com/marketdash/marketdash
//  @contact.name    API Support
//  @contact.url     https://github.com/marketdash/marketdash
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Endpoints for searching stocks, fetching history and requesting predictions
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marketdash/marketdash/config"
	_ "github.com/marketdash/marketdash/docs" // swagger docs
	"github.com/marketdash/marketdash/internal/app"
	"github.com/marketdash/marketdash/internal/logger"
	"github.com/marketdash/marketdash/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., pooled connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// provision connects to MongoDB, creates the stocks collection with its
// unique symbol index, and optionally seeds summaries from a JSON file.
func provision(ctx context.Context, seedPath string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, db, err := app.InitMongo(connectCtx, config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	store := storage.NewStockStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	if seedPath == "" {
		return nil
	}
	summaries, err := storage.ReadSeedFile(seedPath)
	if err != nil {
		return err
	}
	return store.SeedSummaries(ctx, summaries)
}

// main is the entry point of the marketdash application.
//
// Modes (selected via --mode flag):
//   - api:       Starts the REST API that fronts the market-data backend.
//   - provision: Creates the MongoDB collection/index and seeds stock summaries.
//
// Flags:
//   - --mode: Execution mode ("api" or "provision"). Default: "api".
//   - --seed: JSON file with stock summaries to seed (provision mode only).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or provision")
	seed := flag.String("seed", "", "JSON file with stock summaries to seed (provision mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "provision":
		// Provisioning mode: prepare the store and seed stock summaries
		logger.L().Info().Msg("running store provisioning")
		if err := provision(ctx, *seed); err != nil {
			logger.L().Fatal().Err(err).Msg("provisioning failed")
		}
		logger.L().Info().Msg("provisioning completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
