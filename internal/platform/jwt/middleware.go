package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
)

// Context keys set by the middleware.
const (
	ContextUserID  = "userID"
	ContextMobile  = "mobile"
	ContextIsAdmin = "isAdmin"
)

// ErrAccountNotFound is returned by an AccountLookup when the token's user no longer exists.
var ErrAccountNotFound = errors.New("account not found")

// Account is the stored identity of a token's subject.
type Account struct {
	Mobile  string
	IsAdmin bool
}

// AccountLookup loads the current account of a token's subject.
type AccountLookup interface {
	LookupAccount(ctx context.Context, userID uint) (Account, error)
}

// Middleware verifies access tokens taken from the session cookie or an Authorization header.
type Middleware struct {
	secret     []byte
	cookieName string
	accounts   AccountLookup
}

// NewMiddleware creates a Middleware. cookieName is the cookie set at login.
// When accounts is set, the mobile and role come from the stored account instead of the token claims,
// and tokens of deleted users are rejected.
func NewMiddleware(secret, cookieName string, accounts AccountLookup) *Middleware {
	return &Middleware{secret: []byte(secret), cookieName: cookieName, accounts: accounts}
}

// tokenFrom returns the bearer token, falling back to the session cookie.
func (m *Middleware) tokenFrom(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if m.cookieName != "" {
		if v, err := c.Cookie(m.cookieName); err == nil {
			return v
		}
	}
	return ""
}

// authenticate verifies the request token and stores the identity in the gin context.
// It returns http.StatusOK on success, otherwise the status to answer with.
func (m *Middleware) authenticate(c *gin.Context) int {
	if len(m.secret) == 0 {
		slog.Error("JWT secret is not configured", "remote_addr", c.ClientIP())
		return http.StatusInternalServerError
	}
	tokenStr := m.tokenFrom(c)
	if tokenStr == "" {
		return http.StatusUnauthorized
	}
	claims, err := ParseToken(m.secret, tokenStr)
	if err != nil {
		slog.Debug("access token rejected", "error", err, "remote_addr", c.ClientIP())
		return http.StatusUnauthorized
	}
	userID, err := claims.UserID()
	if err != nil {
		return http.StatusUnauthorized
	}

	mobile, isAdmin := claims.Mobile, claims.Admin
	if m.accounts != nil {
		acct, err := m.accounts.LookupAccount(c.Request.Context(), userID)
		if errors.Is(err, ErrAccountNotFound) {
			slog.Info("token for missing account rejected", "user_id", userID, "remote_addr", c.ClientIP())
			return http.StatusUnauthorized
		}
		if err != nil {
			slog.Error("failed to load account", "user_id", userID, "error", err)
			return http.StatusInternalServerError
		}
		mobile, isAdmin = acct.Mobile, acct.IsAdmin
	}

	c.Set(ContextUserID, userID)
	c.Set(ContextMobile, mobile)
	c.Set(ContextIsAdmin, isAdmin)
	return http.StatusOK
}

// AuthRequired rejects unauthenticated JSON requests with 401.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch m.authenticate(c) {
		case http.StatusOK:
			c.Next()
		case http.StatusUnauthorized:
			api.Abort(c, http.StatusUnauthorized, "Authentication required")
		default:
			api.Abort(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// PageAuthRequired redirects unauthenticated browser requests to loginPath.
func (m *Middleware) PageAuthRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch m.authenticate(c) {
		case http.StatusOK:
			c.Next()
		case http.StatusUnauthorized:
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}

// RequireAdmin rejects callers without the admin role with 403. Must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			slog.Warn("admin access denied", "user_id", c.GetUint(ContextUserID), "remote_addr", c.ClientIP())
			api.Abort(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// IsAdmin reports whether the authenticated user has the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

// Mobile returns the authenticated user's mobile number.
func Mobile(c *gin.Context) string {
	return c.GetString(ContextMobile)
}
