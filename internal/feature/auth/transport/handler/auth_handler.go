// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/auth/domain/entity"
	"ecourts_backend/internal/feature/auth/transport/http/dto"
	"ecourts_backend/internal/feature/auth/usecase"
)

// AuthUsecase is the part of the auth usecase used by AuthHandler.
type AuthUsecase interface {
	Signup(ctx context.Context, mobile, password string) (*entity.User, error)
	Login(ctx context.Context, mobile, password string, meta entity.SessionMeta) (*usecase.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string, meta entity.SessionMeta) (*usecase.LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
}

// CookieConfig describes the access token cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// AuthHandler serves registration, login, token refresh and logout.
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

func sessionMeta(c *gin.Context) entity.SessionMeta {
	return entity.SessionMeta{UserAgent: c.Request.UserAgent(), IPAddress: c.ClientIP()}
}

func (h *AuthHandler) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) respondTokens(c *gin.Context, res *usecase.LoginResult) {
	h.setCookie(c, res.AccessToken, int(h.cookie.MaxAge.Seconds()))

	redirect := "/dashboard"
	if res.User.IsAdmin {
		redirect = "/admin"
	}
	c.JSON(http.StatusOK, dto.TokenEnvelope{
		Success:      true,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.ExpiresAt,
		Redirect:     redirect,
		User:         dto.NewUserResponse(res.User),
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Mobile number and password are required")
		return
	}
	req.Mobile = strings.TrimSpace(req.Mobile)

	user, err := h.auth.Signup(c.Request.Context(), req.Mobile, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		api.Error(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": "))
		return
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		slog.Info("register rejected, mobile taken", "mobile", req.Mobile, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusConflict, "Mobile number already registered")
		return
	default:
		slog.Error("register failed", "error", err, "mobile", req.Mobile, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: "Registration successful! Please login.",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login. The access token is returned and also set as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Mobile number and password are required")
		return
	}

	res, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(req.Mobile), req.Password, sessionMeta(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "mobile", req.Mobile, "remote_addr", c.ClientIP())
			api.Error(c, http.StatusUnauthorized, "Invalid mobile number or password")
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("user login successful", "user_id", res.User.ID, "admin", res.User.IsAdmin, "remote_addr", c.ClientIP())
	h.respondTokens(c, res)
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		api.Error(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	res, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, sessionMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken),
			errors.Is(err, usecase.ErrSessionRevoked),
			errors.Is(err, usecase.ErrSessionExpired),
			errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("refresh rejected", "error", err, "remote_addr", c.ClientIP())
			api.Error(c, http.StatusUnauthorized, "Invalid or expired session")
		default:
			slog.Error("refresh failed", "error", err, "remote_addr", c.ClientIP())
			api.Error(c, http.StatusInternalServerError, "Session refresh failed")
		}
		return
	}
	h.respondTokens(c, res)
}

// Logout handles POST /api/auth/logout. The refresh token in the body is optional.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
	}
	h.setCookie(c, "", -1)
	api.Message(c, http.StatusOK, "You have been logged out")
}

// LogoutPage handles GET /logout for the browser pages.
func (h *AuthHandler) LogoutPage(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}
