package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cccc-2705/Mercado/internal/api"
	"github.com/cccc-2705/Mercado/internal/api/metrics"
	"github.com/cccc-2705/Mercado/internal/core/domain"
	"github.com/cccc-2705/Mercado/internal/core/service"
	"github.com/cccc-2705/Mercado/internal/core/store"
	"github.com/cccc-2705/Mercado/internal/infrastructure/config"
	mongodb "github.com/cccc-2705/Mercado/internal/infrastructure/db/mongo"
	redisdb "github.com/cccc-2705/Mercado/internal/infrastructure/db/redis"
	"github.com/cccc-2705/Mercado/internal/infrastructure/upstream"
	"github.com/cccc-2705/Mercado/internal/notify"
	"github.com/cccc-2705/Mercado/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	var cipher *redisdb.TokenCipher
	if cfg.Redis.TokenCipherKey != "" {
		cipher, err = redisdb.NewTokenCipher(cfg.Redis.TokenCipherKey)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid token cipher key")
		}
	}

	tokens := redisdb.NewTokenStore(rdb, cipher)
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)
	catalogCache := mongodb.NewCatalogRepository(db)

	// --- Core ---
	sessionStore := store.New(log)
	sessionStore.OnDispatch(func(ev domain.Event) {
		if action, outcome, ok := ev.Type.Outcome(); ok {
			metrics.SessionActionOutcomes.WithLabelValues(action, outcome).Inc()
		}
	})

	notifier := notify.NewDispatcher(log)
	notifier.Start(ctx)

	actions := service.NewSessionService(tokens, client, client, sessionStore, notifier, log)
	catalog := service.NewCatalogService(client, catalogCache, cfg.Upstream.CatalogTTL, log)

	// Restore the session from persisted tokens before serving views.
	actions.RefreshToken(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Store:         sessionStore,
		Actions:       actions,
		Catalog:       catalog,
		Notifications: notifier,
		Mongo:         db,
		Redis:         rdb,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront client listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
