package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/communitysafe/safety-gateway/internal/api"
	"github.com/communitysafe/safety-gateway/internal/core/service"
	"github.com/communitysafe/safety-gateway/internal/infrastructure/alerting"
	"github.com/communitysafe/safety-gateway/internal/infrastructure/config"
	mongodb "github.com/communitysafe/safety-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/communitysafe/safety-gateway/internal/infrastructure/db/redis"
	"github.com/communitysafe/safety-gateway/internal/infrastructure/geolocation"
	"github.com/communitysafe/safety-gateway/pkg/logger"
)

// @title        Safety Gateway API
// @version      1.0
// @description  Session-scoped gateway for community incident reports and SOS alerts.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	// --- Outbound adapters ---
	alerts := alerting.NewClient(cfg.Alerting.BaseURL, cfg.Alerting.Timeout, log)
	geo := geolocation.NewProvider(cfg.Geolocation.GatewayURL, cfg.Geolocation.Timeout, log)
	journal := mongodb.NewJournalRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Session registry ---
	registry := service.NewRegistry(geo, alerts, journal, dedup, cfg.Session.TTL, log)
	registry.StartSweeper(ctx)

	// --- HTTP server ---
	e := api.NewRouter(registry, db, rdb, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting safety gateway")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("safety gateway stopped")
}
