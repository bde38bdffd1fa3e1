// Package server runs the RentalEase HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/rentalease/config"
	"github.com/shashiranjanraj/rentalease/internal/kernel"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/cache"
	"github.com/shashiranjanraj/rentalease/pkg/event"
	"github.com/shashiranjanraj/rentalease/pkg/logger"
	"github.com/shashiranjanraj/rentalease/pkg/workerpool"
)

const shutdownTimeout = 10 * time.Second

// Start boots every dependency from config and serves until SIGINT or
// SIGTERM, then drains in-flight requests and queued events.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Use(logger.New(os.Stdout, config.IsProduction()))
	if uri := config.LogMongoURI(); uri != "" {
		sink, closeSink, err := logger.DialMongoSink(ctx, uri, config.MongoDatabase())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer closeSink()
			logger.Use(slog.New(logger.NewMultiHandler(logger.L.Handler(), sink)))
		}
	}

	tokens, err := auth.NewTokensFromConfig()
	if err != nil {
		return err
	}

	store, err := OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Error("store close failed", "error", err)
		}
	}()

	// Redis is optional; without it every read goes to the store.
	readCache, err := cache.Connect(ctx)
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		readCache = nil
	}
	defer readCache.Close()

	pool := workerpool.New("events", config.EventWorkers())
	dispatcher := event.NewDispatcher(pool)

	k := kernel.NewHTTPKernel(kernel.Deps{
		Repos:        store.Repos,
		Tokens:       tokens,
		Cache:        readCache,
		Events:       dispatcher,
		Location:     config.DisplayLocation(),
		SecureCookie: config.IsProduction(),
		CORSOrigins:  config.CORSAllowedOrigins(),

		AuthRateLimit: config.AuthRateLimit(),
		TrustProxy:    config.TrustProxy(),
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           k.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("RentalEase listening", "addr", srv.Addr, "env", config.AppEnv(), "driver", config.DatabaseDriver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		pool.Shutdown()
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	pool.Shutdown()
	if err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
