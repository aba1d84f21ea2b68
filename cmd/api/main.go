package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/database"
	"github.com/noah-isme/school-admin-api/internal/server"
	"github.com/noah-isme/school-admin-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", cfg.AppName).Logger()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, caching disabled")
		} else {
			defer redisClient.Close()
		}
	}

	var publisher service.NoticePublisher
	if cfg.NATSURL != "" {
		conn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, notice events stay local")
		} else {
			defer conn.Drain()
			publisher = conn
		}
	}

	srv := server.New(cfg, server.Infra{
		Redis:     redisClient,
		Publisher: publisher,
		AccessLog: cfg.AppEnv == "development",
	}, logger)

	events, unsubscribe := srv.Notices.Subscribe()
	defer unsubscribe()
	go auditNotices(events, logger)

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddress()).Msg("http server starting")
		if err := srv.App.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(srv.App, logger)
}

func auditNotices(events <-chan service.NoticeEvent, logger zerolog.Logger) {
	audit := logger.With().Str("component", "notice_audit").Logger()
	for event := range events {
		audit.Info().
			Str("type", event.Type).
			Str("notice_id", event.Notice.ID).
			Time("occurred_at", event.OccurredAt).
			Msg("notice board changed")
	}
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
