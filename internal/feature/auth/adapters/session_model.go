package adapters

import (
	"time"

	"ecourts_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the row layout of the sessions table.
type SessionModel struct {
	ID        string     `gorm:"primaryKey;size:64"`
	UserID    uint       `gorm:"index;not null"`
	UserAgent string     `gorm:"size:512"`
	IPAddress string     `gorm:"size:45"`
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

// TableName pins the table name for every dialect.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the row into a domain session.
func (m *SessionModel) ToEntity() *entity.Session {
	s := entity.Session(*m)
	return &s
}

// SessionModelFromEntity converts a domain session into a row.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	m := SessionModel(*s)
	return &m
}
