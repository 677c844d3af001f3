package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/app"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/auth"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/config"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/logging"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/notify"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/storage/postgres"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/storage/redis"
	transporthttp "github.com/Anchal-Prasad/SportsBuddy/services/api/internal/transport/http"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	boot := logging.New("info", "text")
	config.LoadDotEnv(boot)

	cfg, err := config.Load()
	if err != nil {
		boot.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == config.DefaultDatabaseURL {
		logger.Warn("DATABASE_URL not set, using default local DSN")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		logger.Fatalf("db ping: %v", err)
	}
	applied, err := migrations.Apply(startupCtx, pool)
	if err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	for _, name := range applied {
		logger.WithField("migration", name).Info("migration applied")
	}

	healthChecks := []transporthttp.HealthCheck{{Name: "postgres", Probe: pool.Ping}}
	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	var refOpts []app.ReferenceServiceOption
	refOpts = append(refOpts, app.WithReferenceLogger(logger))
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(startupCtx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, running without cache")
		} else {
			defer client.Close()
			healthChecks = append(healthChecks, transporthttp.HealthCheck{
				Name:  "redis",
				Probe: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			})
			refOpts = append(refOpts, app.WithReferenceCache(redis.NewCache(client, cfg.ReferenceTTL)))
			notifier = notify.Multi{notifier, notify.NewRedisNotifier(client, cfg.NotifyChannel, logger)}
			logger.WithField("channel", cfg.NotifyChannel).Info("redis cache and notifications enabled")
		}
	}

	clk := clock.NewSystem()
	eventSvc := app.NewEventService(postgres.NewEventRepository(pool), clk,
		app.WithLocation(loc),
		app.WithNotifier(notifier),
		app.WithLogger(logger),
	)
	referenceSvc := app.NewReferenceService(postgres.NewReferenceRepository(pool), refOpts...)
	profileSvc := app.NewProfileService(postgres.NewProfileRepository(pool), clk)

	handler := transporthttp.NewRouter(transporthttp.Services{
		Events:    eventSvc,
		Reference: referenceSvc,
		Profiles:  profileSvc,
		Verifier:  auth.NewVerifier(cfg.JWTSecret),
	}, transporthttp.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		HealthChecks:   healthChecks,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.WithFields(logrus.Fields{"port": cfg.Port, "timezone": loc.String()}).Info("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server error")
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Error("server shutdown error")
	}
	logger.Info("server stopped")
}
