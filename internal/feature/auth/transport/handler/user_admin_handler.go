package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/auth/domain/entity"
	"ecourts_backend/internal/feature/auth/transport/http/dto"
	"ecourts_backend/internal/feature/auth/usecase"
	jwtmw "ecourts_backend/internal/platform/jwt"
)

// UserAdmin is the user management part of the auth usecase.
type UserAdmin interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, mobile, password string, isAdmin bool) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, targetID uint) error
}

// UserAdminHandler serves /api/admin/users. Routes must be behind AuthRequired and RequireAdmin.
type UserAdminHandler struct {
	users UserAdmin
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(users UserAdmin) *UserAdminHandler {
	return &UserAdminHandler{users: users}
}

// List handles GET /api/admin/users.
func (h *UserAdminHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		api.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.NewUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, dto.UsersEnvelope{Success: true, Users: out})
}

// Create handles POST /api/admin/users.
func (h *UserAdminHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, "Mobile number and password are required")
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), strings.TrimSpace(req.Mobile), req.Password, req.IsAdmin)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		api.Error(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": "))
		return
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		api.Error(c, http.StatusConflict, "User already exists")
		return
	default:
		slog.Error("admin create user failed", "error", err)
		api.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	actorID, _ := jwtmw.UserID(c)
	slog.Info("user created by admin", "admin_id", actorID, "user_id", user.ID, "is_admin", user.IsAdmin)
	c.JSON(http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: "User created successfully",
		User:    dto.NewUserResponse(user),
	})
}

// Delete handles DELETE /api/admin/users. An admin cannot delete their own account.
func (h *UserAdminHandler) Delete(c *gin.Context) {
	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, "user_id is required")
		return
	}
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		api.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	err := h.users.DeleteUser(c.Request.Context(), actorID, req.UserID)
	switch {
	case err == nil:
		slog.Info("user deleted by admin", "admin_id", actorID, "user_id", req.UserID)
		api.Message(c, http.StatusOK, "User deleted successfully")
	case errors.Is(err, usecase.ErrSelfDeleteForbidden):
		slog.Warn("admin self-delete rejected", "admin_id", actorID)
		api.Error(c, http.StatusForbidden, "Cannot delete your own account")
	case errors.Is(err, usecase.ErrUserNotFound):
		api.Error(c, http.StatusNotFound, "User not found")
	default:
		slog.Error("admin delete user failed", "error", err, "user_id", req.UserID)
		api.Error(c, http.StatusInternalServerError, "Failed to delete user")
	}
}
