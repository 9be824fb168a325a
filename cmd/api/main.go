// @title        Publishing API
// @version      1.0
// @description  Content-publishing backend: users, posts, comments, and a chat assistant proxy.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell/publishing-api/internal/api"
	"github.com/inkwell/publishing-api/internal/infrastructure/chat"
	mongodb "github.com/inkwell/publishing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/publishing-api/internal/infrastructure/db/redis"
	"github.com/inkwell/publishing-api/internal/infrastructure/queue"
	"github.com/inkwell/publishing-api/internal/pkg/config"
	"github.com/inkwell/publishing-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	for name, idx := range map[string]interface{ EnsureIndexes(context.Context) error }{
		"users":    mongodb.NewUserRepository(db),
		"posts":    mongodb.NewPostRepository(db),
		"comments": mongodb.NewCommentRepository(db),
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Activity dispatcher ---
	dispatcher := queue.NewDispatcher(0, mongodb.NewActivityRepository(db), log)
	dispatcher.Start(ctx)

	// --- External chat service ---
	chatClient := chat.NewClient(cfg.Chat.BaseURL, cfg.Chat.Timeout)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, chatClient, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
