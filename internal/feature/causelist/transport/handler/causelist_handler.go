// Package handler provides the HTTP handlers of the cause list feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecourts_backend/internal/api"
	"ecourts_backend/internal/feature/causelist/domain/entity"
	"ecourts_backend/internal/feature/causelist/transport/http/dto"
	"ecourts_backend/internal/feature/causelist/usecase"
)

// CauseListUsecase is the part of the cause list usecase used by CauseListHandler.
type CauseListUsecase interface {
	Complexes() []entity.Complex
	Judges(complexCode string) ([]entity.Judge, error)
	Generate(ctx context.Context, req usecase.GenerateRequest) (*usecase.GenerateResult, error)
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

// CauseListHandler serves the court directory and cause list generation and download endpoints.
type CauseListHandler struct {
	uc CauseListUsecase
}

// NewCauseListHandler creates a CauseListHandler.
func NewCauseListHandler(uc CauseListUsecase) *CauseListHandler {
	return &CauseListHandler{uc: uc}
}

// Complexes handles GET /api/causelist/complexes.
func (h *CauseListHandler) Complexes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ComplexesEnvelope{Success: true, Complexes: h.uc.Complexes()})
}

// Judges handles GET /api/causelist/judges?complex_code=.
func (h *CauseListHandler) Judges(c *gin.Context) {
	code := c.Query("complex_code")
	if code == "" {
		api.Error(c, http.StatusBadRequest, "complex_code is required")
		return
	}
	judges, err := h.uc.Judges(code)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownComplex) {
			api.Error(c, http.StatusBadRequest, "Unknown court complex")
			return
		}
		slog.Error("list judges failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to load judges")
		return
	}
	c.JSON(http.StatusOK, dto.JudgesEnvelope{Success: true, Judges: judges})
}

// Download handles POST /api/causelist/download.
func (h *CauseListHandler) Download(c *gin.Context) {
	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, "complex_code and date are required")
		return
	}

	res, err := h.uc.Generate(c.Request.Context(), usecase.GenerateRequest{
		ComplexCode: req.ComplexCode,
		JudgeCode:   req.JudgeCode,
		Date:        req.Date,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		api.Error(c, http.StatusBadRequest, "Invalid date. Use YYYY-MM-DD")
		return
	case errors.Is(err, usecase.ErrUnknownComplex):
		api.Error(c, http.StatusBadRequest, "Unknown court complex")
		return
	case errors.Is(err, usecase.ErrUnknownJudge):
		api.Error(c, http.StatusBadRequest, "Unknown judge")
		return
	default:
		slog.Error("cause list generation failed", "error", err, "complex_code", req.ComplexCode, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to generate cause list")
		return
	}

	msg := fmt.Sprintf("Generated %d cause list(s) for %s", len(res.Files), res.Complex.Name)
	c.JSON(http.StatusOK, dto.NewDownloadEnvelope(res, msg))
}

// DownloadFile handles GET /api/causelist/download-file?file=.
func (h *CauseListHandler) DownloadFile(c *gin.Context) {
	name := c.Query("file")
	rc, size, err := h.uc.Open(c.Request.Context(), name)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		slog.Warn("rejected cause list file name", "file", name, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Invalid file name")
		return
	case errors.Is(err, usecase.ErrFileNotFound):
		api.Error(c, http.StatusNotFound, "File not found")
		return
	default:
		slog.Error("open cause list failed", "error", err, "file", name, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Failed to download file")
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, "application/pdf", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, name),
	})
}
