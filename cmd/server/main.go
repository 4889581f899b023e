package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/printfloor/internal/api"
	"github.com/andresuchdata/printfloor/internal/app"
	"github.com/andresuchdata/printfloor/internal/config"
	"github.com/andresuchdata/printfloor/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(logger.LevelForMode(cfg.Server.Mode, cfg.Log.Level))
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	floor := app.New(cfg)
	if cfg.App.SeedFile != "" {
		if _, err := floor.Seed(ctx, cfg.App.SeedFile); err != nil {
			logger.Log.Fatal().Err(err).Str("path", cfg.App.SeedFile).Msg("Failed to load seed fixture")
		}
	}

	router := api.NewRouter(floor.Services, cfg.Server.AllowedOrigins, cfg.App.TxTimeout)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info().Str("port", cfg.Server.Port).Int("time_slots", len(cfg.Ledger.TimeSlots)).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info().Msg("Shutting down server...")

		// Give in-flight requests 5 seconds to finish
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}

	logger.Log.Info().Msg("Server exiting")
}
