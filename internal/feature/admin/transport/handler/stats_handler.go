// Package handler serves dashboard statistics.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/admin/transport/http/dto"
	"ecourts_backend/internal/feature/admin/usecase"
)

// StatsUsecase is the part of the stats usecase used by StatsHandler.
type StatsUsecase interface {
	Dashboard(ctx context.Context) (usecase.CaseStats, error)
	AdminStats(ctx context.Context) (*usecase.Stats, error)
}

// StatsHandler serves the dashboard and admin statistics.
type StatsHandler struct {
	stats StatsUsecase
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(stats StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard handles GET /api/dashboard.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	s, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("dashboard stats failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardEnvelope(s))
}

// AdminStats handles GET /api/admin/stats.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	s, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		slog.Error("admin stats failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminStatsEnvelope(s))
}
