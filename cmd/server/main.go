// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/movielens-api/docs" // Import generated swagger docs
	"github.com/tomtom215/movielens-api/internal/api"
	"github.com/tomtom215/movielens-api/internal/config"
	"github.com/tomtom215/movielens-api/internal/dataset"
	"github.com/tomtom215/movielens-api/internal/logging"
	"github.com/tomtom215/movielens-api/internal/query"
	"github.com/tomtom215/movielens-api/internal/store"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset_dir", cfg.Dataset.Dir).
		Str("version", api.Version).
		Msg("Starting MovieLens API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the dataset into memory. The store is immutable from here on;
	// every request is served from these tables.
	tables, err := dataset.Load(ctx, cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	engine := query.NewEngine(store.New(tables), cfg.API.MaxPageSize, cfg.API.TopN)

	router := api.NewRouter(engine, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	// Stop accepting new connections and wait for in-flight requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
