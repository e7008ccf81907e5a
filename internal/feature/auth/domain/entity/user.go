// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents an account that can sign in to the portal.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Mobile is the mobile number used to sign in. It is unique across all users.
	Mobile string `gorm:"uniqueIndex;size:15;not null"`

	// Password is the bcrypt hash of the user's password. Plaintext is never stored.
	Password string `gorm:"size:128;not null"`

	// IsAdmin grants access to user management and statistics.
	IsAdmin bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role returns "admin" or "user".
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
