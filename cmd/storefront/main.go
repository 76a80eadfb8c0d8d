// Command storefront serves the public site API and the admin backend.
//
//	@title			Storefront API
//	@version		1.0
//	@description	Public site and admin backend of the Radhe Online Services storefront.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radheonline/storefront/internal/api"
	"github.com/radheonline/storefront/internal/config"
	"github.com/radheonline/storefront/internal/core/service"
	mongostore "github.com/radheonline/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/radheonline/storefront/internal/infrastructure/db/redis"
	"github.com/radheonline/storefront/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	// Redis backs the redis session backend and the enquiry dedup guard. The
	// other backends run without it when it is unreachable.
	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		if cfg.Session.Backend == config.BackendRedis {
			log.Fatal().Err(err).Msg("connect redis")
		}
		log.Warn().Err(err).Msg("redis unavailable, enquiry dedup disabled")
	} else {
		defer rdb.Close()
	}

	admins := mongostore.NewAdminRepository(db)
	if err := mongostore.EnsureIndexes(ctx,
		admins,
		mongostore.NewUpdateRepository(db),
		mongostore.NewContactRepository(db),
	); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	directory := service.NewDirectoryService(admins, logger.Component("directory"))
	created, err := directory.EnsureBootstrapAdmin(ctx, cfg.Bootstrap.Username, cfg.Bootstrap.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin")
	}
	if created {
		log.Info().Str("username", cfg.Bootstrap.Username).Msg("bootstrap admin created")
	}

	e, err := api.Build(cfg, db, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
