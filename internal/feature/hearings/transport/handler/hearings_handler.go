// Package handler provides the HTTP handler of the hearings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/hearings/domain/entity"
	"ecourts_backend/internal/feature/hearings/usecase"
)

// HearingsUsecase lists hearings.
type HearingsUsecase interface {
	List(ctx context.Context, kind string, days int) (entity.HearingList, error)
}

// HearingsEnvelope is the body of GET /api/live-hearings.
type HearingsEnvelope struct {
	Success bool               `json:"success"`
	Data    entity.HearingList `json:"data"`
}

// HearingsHandler serves hearing listings.
type HearingsHandler struct {
	hearings HearingsUsecase
}

// NewHearingsHandler creates a HearingsHandler.
func NewHearingsHandler(hearings HearingsUsecase) *HearingsHandler {
	return &HearingsHandler{hearings: hearings}
}

// List handles GET /api/live-hearings?type=today|tomorrow|upcoming&days=N.
func (h *HearingsHandler) List(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			api.Error(c, http.StatusBadRequest, "days must be a number")
			return
		}
		days = n
	}

	list, err := h.hearings.List(c.Request.Context(), c.Query("type"), days)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownListing) {
			api.Error(c, http.StatusBadRequest, "type must be today, tomorrow or upcoming")
			return
		}
		slog.Error("live hearings failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to fetch live hearings")
		return
	}
	c.JSON(http.StatusOK, HearingsEnvelope{Success: true, Data: list})
}
