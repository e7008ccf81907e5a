// Command refresh re-reconciles every stored case against the eCourts portal.
package main

import (
	"context"
	"log/slog"
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

const refreshTimeout = 30 * time.Minute

func main() {
	os.Exit(run())
}

// run performs the refresh and returns the process exit code. Deferred cleanup runs before it returns.
func run() int {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	db, err := infradb.OpenDB(cfg.Database, di.Models()...)
	if err != nil {
		log.Error("failed to open database", "error", err)
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Writes go through the cache so its listings are invalidated.
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			log.Warn("Redis unavailable. Cached listings may be stale until they expire.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	summary, err := di.NewRefresher(cfg, db, rdb).RefreshAll(ctx)
	log.Info("refresh finished",
		"total", summary.Total,
		"updated", summary.Updated,
		"unavailable", summary.Unavailable,
		"failed", summary.Failed,
	)
	if err != nil {
		log.Error("refresh aborted", "error", err)
		return 1
	}
	return 0
}
