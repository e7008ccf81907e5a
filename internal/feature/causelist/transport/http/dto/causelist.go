// Package dto defines the JSON bodies of the cause list endpoints.
package dto

import (
	"net/url"

	"ecourts_backend/internal/feature/causelist/domain/entity"
	"ecourts_backend/internal/feature/causelist/usecase"
)

// DownloadFilePath is the route that serves generated files.
const DownloadFilePath = "/api/causelist/download-file"

// DownloadRequest asks for one judge's cause list, or every judge's when JudgeCode is empty.
type DownloadRequest struct {
	ComplexCode string `json:"complex_code" binding:"required"`
	JudgeCode   string `json:"judge_code"`
	Date        string `json:"date" binding:"required"`
}

// ComplexesEnvelope is the GET /api/causelist/complexes response.
type ComplexesEnvelope struct {
	Success   bool             `json:"success"`
	Complexes []entity.Complex `json:"complexes"`
}

// JudgesEnvelope is the GET /api/causelist/judges response.
type JudgesEnvelope struct {
	Success bool           `json:"success"`
	Judges  []entity.Judge `json:"judges"`
}

// FileResponse describes one generated file.
type FileResponse struct {
	JudgeName   string `json:"judge_name"`
	CourtRoom   string `json:"court_room"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
	CasesCount  int    `json:"cases_count"`
	FileSize    int64  `json:"file_size"`
}

// DownloadEnvelope is the POST /api/causelist/download response.
type DownloadEnvelope struct {
	Success     bool           `json:"success"`
	BatchID     string         `json:"batch_id"`
	ComplexName string         `json:"complex_name"`
	Date        string         `json:"date"`
	Files       []FileResponse `json:"files"`
	TotalJudges int            `json:"total_judges"`
	TotalPDFs   int            `json:"total_pdfs"`
	Message     string         `json:"message"`
}

// NewDownloadEnvelope converts a generation result.
func NewDownloadEnvelope(res *usecase.GenerateResult, message string) DownloadEnvelope {
	files := make([]FileResponse, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, FileResponse{
			JudgeName:   f.JudgeName,
			CourtRoom:   f.CourtRoom,
			FileName:    f.FileName,
			DownloadURL: DownloadFilePath + "?file=" + url.QueryEscape(f.FileName),
			CasesCount:  f.CasesCount,
			FileSize:    f.FileSize,
		})
	}
	return DownloadEnvelope{
		Success:     true,
		BatchID:     res.BatchID,
		ComplexName: res.Complex.Name,
		Date:        res.Date.Format(usecase.DateLayout),
		Files:       files,
		TotalJudges: res.TotalJudges,
		TotalPDFs:   len(files),
		Message:     message,
	}
}
