package usecase

import (
	"context"

	"ecourts_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for refresh sessions.
// Implemented by the gorm adapter and by the Redis store in platform/session.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (the refresh token value).
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// FindByUserID retrieves the active sessions of a user, oldest first.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error)

	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, id string) error

	// RevokeAllByUserID revokes every session of a user.
	RevokeAllByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes expired sessions and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)

	// CountByUserID returns the number of active sessions of a user.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteOldestByUserID deletes the oldest active session of a user.
	DeleteOldestByUserID(ctx context.Context, userID uint) error
}
