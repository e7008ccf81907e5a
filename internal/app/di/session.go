package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "ecourts_backend/internal/feature/auth/adapters"
	"ecourts_backend/internal/feature/auth/usecase"
	"ecourts_backend/internal/platform/session"
)

// NewSessionRepository returns the Redis session store when rdb is set, otherwise the database one.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(db)
}
