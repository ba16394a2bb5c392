package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/racha-stats-service/internal/config"
	"github.com/maxviazov/racha-stats-service/internal/handler"
	"github.com/maxviazov/racha-stats-service/internal/logger"
	"github.com/maxviazov/racha-stats-service/internal/metrics"
	postgres "github.com/maxviazov/racha-stats-service/internal/repository"
	pgrepo "github.com/maxviazov/racha-stats-service/internal/repository/postgres"
	"github.com/maxviazov/racha-stats-service/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load application config
	path := os.Getenv("APP_CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.App.Env
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Str("env", cfg.App.Env).Str("version", cfg.App.Version).Msg("✅ Config and logger initialized")

	opts, err := service.StandingsOptionsFromConfig(cfg.Stats)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Stats settings invalid")
	}

	connectPgx, err := postgres.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Postgres connection failed")
	}
	defer connectPgx.Close()

	pool := connectPgx.Pool()
	m := metrics.New()
	standingsSvc := service.NewStandingsService(
		pgrepo.NewTxManager(pool),
		pgrepo.NewRachaRepository(pool),
		pgrepo.NewMatchRepository(pool),
		m,
		opts,
		appLogger,
	)

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog(appLogger))
	handler.Register(r, pgrepo.NewPinger(pool), standingsSvc, m.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			appLogger.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("👋 Service stopped")
}
