// Package dto defines the request and response bodies of the auth endpoints.
package dto

import (
	"time"

	"ecourts_backend/internal/feature/auth/domain/entity"
)

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token. Optional on logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateUserRequest is the body of POST /api/admin/users.
type CreateUserRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

// DeleteUserRequest is the body of DELETE /api/admin/users.
type DeleteUserRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// UserResponse is the public view of a user. The password hash is never included.
type UserResponse struct {
	ID        uint      `json:"id"`
	Mobile    string    `json:"mobile"`
	IsAdmin   bool      `json:"is_admin"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a user entity.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Mobile:    u.Mobile,
		IsAdmin:   u.IsAdmin,
		Role:      u.Role(),
		CreatedAt: u.CreatedAt,
	}
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// UsersEnvelope wraps the user list.
type UsersEnvelope struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

// TokenEnvelope is returned by login and refresh.
type TokenEnvelope struct {
	Success      bool         `json:"success"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	Redirect     string       `json:"redirect"`
	User         UserResponse `json:"user"`
}
