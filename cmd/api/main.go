package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/stackit/community-api/internal/api"
	"github.com/stackit/community-api/internal/auth"
	"github.com/stackit/community-api/internal/infrastructure/config"
	"github.com/stackit/community-api/internal/infrastructure/db/postgres"
	redisdb "github.com/stackit/community-api/internal/infrastructure/db/redis"
	"github.com/stackit/community-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init("info", "development")
		bootLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{
		DSN:            cfg.Postgres.DSN,
		MaxConns:       cfg.Postgres.MaxConns,
		MigrateOnStart: cfg.Postgres.MigrateOnStart,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer pool.Close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			// the cache is best-effort, run without it
			log.Warn().Err(err).Msg("redis unavailable, question cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	e, dispatcher := api.NewRouter(api.RouterDeps{
		Pool:    pool,
		Redis:   rdb,
		Codec:   codec,
		Workers: cfg.Workers,
		Logger:  log,
	})

	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
