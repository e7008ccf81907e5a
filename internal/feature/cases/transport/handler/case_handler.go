// Package handler provides the HTTP handlers of the cases feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/cases/transport/http/dto"
	"ecourts_backend/internal/feature/cases/usecase"
)

// CaseUsecase is the part of the cases usecase used by CaseHandler.
type CaseUsecase interface {
	Reconcile(ctx context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Case, error)
	ServiceAvailable(ctx context.Context) bool
}

// CaseHandler serves CNR search and the case listing.
type CaseHandler struct {
	cases CaseUsecase
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(cases CaseUsecase) *CaseHandler {
	return &CaseHandler{cases: cases}
}

// Search handles POST /api/search.
func (h *CaseHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("search request invalid", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "CNR number is required")
		return
	}
	cnr := usecase.NormalizeCNR(req.CNR)

	stored, info, err := h.cases.Reconcile(c.Request.Context(), cnr)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		api.Error(c, http.StatusBadRequest, "CNR number is required")
		return
	case errors.Is(err, usecase.ErrDataUnavailable):
		slog.Info("search returned no real data", "cnr", cnr, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusUnprocessableEntity, "Real case data not available from eCourts servers")
		return
	default:
		slog.Error("search failed", "error", err, "cnr", cnr, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Search failed. Please try again.")
		return
	}

	slog.Info("case searched", "cnr", cnr, "case_id", stored.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SearchEnvelope{
		Success: true,
		Data: dto.SearchData{
			CaseInfo:  info,
			Case:      dto.NewCaseResponse(*stored),
			SavedToDB: true,
			CaseID:    stored.ID,
			Message:   fmt.Sprintf("Real case data for %s retrieved from eCourts India Portal successfully", cnr),
		},
	})
}

// List handles GET /api/cases.
func (h *CaseHandler) List(c *gin.Context) {
	cases, err := h.cases.ListRecent(c.Request.Context(), usecase.DefaultRecentLimit)
	if err != nil {
		slog.Error("list cases failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to load cases")
		return
	}
	c.JSON(http.StatusOK, dto.NewCasesEnvelope(cases))
}

// ServiceStatus handles GET /api/service-status.
func (h *CaseHandler) ServiceStatus(c *gin.Context) {
	status := dto.ServiceStatus{Available: h.cases.ServiceAvailable(c.Request.Context()), Status: "Online"}
	if !status.Available {
		status.Status = "Offline"
	}
	c.JSON(http.StatusOK, dto.ServiceStatusEnvelope{Success: true, Status: status})
}
