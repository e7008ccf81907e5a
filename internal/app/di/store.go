package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	caseadapters "ecourts_backend/internal/feature/cases/adapters"
	"ecourts_backend/internal/feature/causelist/adapters/storage"
	causelistusecase "ecourts_backend/internal/feature/causelist/usecase"
	"ecourts_backend/internal/platform/cache"
	"ecourts_backend/internal/platform/config"
)

const caseCacheTTL = 5 * time.Minute

// NewCaseStore returns the case repository, cached in Redis when rdb is set.
func NewCaseStore(rdb *redis.Client, db *gorm.DB) *cache.CachingCaseRepository {
	return cache.NewCachingCaseRepository(rdb, caseCacheTTL, caseadapters.NewCaseGorm(db), "cases")
}

// NewFileStore returns the MinIO store when an endpoint is configured, otherwise a local directory.
func NewFileStore(ctx context.Context, cfg config.Storage, outputDir string) (causelistusecase.FileStore, error) {
	if cfg.Endpoint == "" {
		slog.Info("storing cause lists on disk", "dir", outputDir)
		local, err := storage.NewLocalStore(outputDir)
		if err != nil {
			return nil, err
		}
		return local, nil
	}
	client, err := storage.NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("storing cause lists in MinIO", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	remote, err := storage.NewMinioStore(ctx, client, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	return remote, nil
}
