package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// refreshTokenBytes is the entropy of a refresh token; the hex form is 64 characters.
const refreshTokenBytes = 32

// SessionMeta describes the client that opened a session.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// Session is a refresh session issued at login. Its ID is the opaque refresh token.
type Session struct {
	ID        string
	UserID    uint
	UserAgent string
	IPAddress string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // nil while active
}

// NewSession creates a session for userID with a random refresh token.
func NewSession(userID uint, meta SessionMeta, now time.Time, ttl time.Duration) (*Session, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &Session{
		ID:        hex.EncodeToString(buf),
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the session is past its expiry at t.
func (s *Session) IsExpired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

// IsRevoked reports whether the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid reports whether the session can still be used at t.
func (s *Session) IsValid(t time.Time) bool {
	return !s.IsExpired(t) && !s.IsRevoked()
}
