// Package handler provides HTTP handlers for platform endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger checks a backing service. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves /healthz.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a HealthHandler. A nil db skips the database check.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness and, for GET, database reachability. Responses are never cached.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.Error("health check: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
