package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"ecourts_backend/internal/app/di"
	"ecourts_backend/internal/platform/config"
	infradb "ecourts_backend/internal/platform/db"
	"ecourts_backend/internal/platform/logger"
	infraredis "ecourts_backend/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.Database, di.Models()...)
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			log.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	engine, err := di.NewServer(ctx, cfg, db, rdb)
	if err != nil {
		log.Fatal("failed to assemble server", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
