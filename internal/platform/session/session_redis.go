// Package session stores refresh sessions in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecourts_backend/internal/feature/auth/domain/entity"
	"ecourts_backend/internal/feature/auth/usecase"
)

// revokedRetention is how long a revoked session stays readable so reuse is reported as revoked.
const revokedRetention = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository.
// Each session is a JSON string with a TTL; a sorted set per user indexes session IDs by creation time.
type SessionRedis struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a SessionRedis whose keys start with prefix.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{client: client, prefix: prefix, now: time.Now}
}

func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

func (r *SessionRedis) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

func (r *SessionRedis) put(ctx context.Context, s *entity.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.sessionKey(s.ID), data, ttl).Err()
}

// Create stores the session until it expires.
func (r *SessionRedis) Create(ctx context.Context, s *entity.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return usecase.ErrSessionExpired
	}

	pipe := r.client.TxPipeline()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	pipe.Set(ctx, r.sessionKey(s.ID), data, ttl)
	pipe.ZAdd(ctx, r.userKey(s.UserID), redis.Z{Score: float64(s.CreatedAt.UnixNano()), Member: s.ID})
	_, err = pipe.Exec(ctx)
	return err
}

// FindByID loads a session by its refresh token.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var s entity.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// FindByUserID returns the active sessions of a user, oldest first.
// Index entries whose session key has expired are pruned on the way.
func (r *SessionRedis) FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	ids, err := r.client.ZRange(ctx, r.userKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	now := r.now()
	var sessions []*entity.Session
	for _, id := range ids {
		s, err := r.FindByID(ctx, id)
		if errors.Is(err, usecase.ErrSessionNotFound) {
			r.client.ZRem(ctx, r.userKey(userID), id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if s.IsValid(now) {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// Revoke marks the session revoked and shortens its lifetime.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	now := r.now()
	s.RevokedAt = &now
	if err := r.put(ctx, s, revokedRetention); err != nil {
		return err
	}
	return r.client.ZRem(ctx, r.userKey(s.UserID), id).Err()
}

// RevokeAllByUserID revokes every indexed session of a user.
func (r *SessionRedis) RevokeAllByUserID(ctx context.Context, userID uint) error {
	ids, err := r.client.ZRange(ctx, r.userKey(userID), 0, -1).Result()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := r.Revoke(ctx, id); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
			return err
		}
	}
	return nil
}

// DeleteExpired is a no-op; Redis expires session keys itself.
func (r *SessionRedis) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// CountByUserID returns the number of active sessions of a user.
func (r *SessionRedis) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	sessions, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

// DeleteOldestByUserID removes the oldest active session of a user.
func (r *SessionRedis) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	sessions, err := r.FindByUserID(ctx, userID)
	if err != nil || len(sessions) == 0 {
		return err
	}
	oldest := sessions[0]

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.sessionKey(oldest.ID))
	pipe.ZRem(ctx, r.userKey(userID), oldest.ID)
	_, err = pipe.Exec(ctx)
	return err
}
