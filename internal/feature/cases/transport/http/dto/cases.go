// Package dto defines the JSON bodies of the cases endpoints.
package dto

import "ecourts_backend/internal/feature/cases/domain/entity"

const (
	hearingDateLayout = "02/01/2006"
	updatedAtLayout   = "02/01/2006 15:04"
)

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	CNR string `json:"cnr"`
}

// SearchData is the payload of a successful search. Case is the stored row after reconciliation.
type SearchData struct {
	CaseInfo  *entity.CaseInfo `json:"case_info"`
	Case      CaseResponse     `json:"case"`
	SavedToDB bool             `json:"saved_to_db"`
	CaseID    uint             `json:"case_id"`
	Message   string           `json:"message"`
}

// SearchEnvelope wraps SearchData.
type SearchEnvelope struct {
	Success bool       `json:"success"`
	Data    SearchData `json:"data"`
}

// CaseResponse is one row of GET /api/cases.
type CaseResponse struct {
	ID              uint   `json:"id"`
	CNR             string `json:"cnr"`
	CaseType        string `json:"case_type"`
	CaseTitle       string `json:"case_title"`
	CourtName       string `json:"court_name"`
	JudgeName       string `json:"judge_name"`
	FilingNumber    string `json:"filing_number"`
	FilingDate      string `json:"filing_date"`
	Petitioner      string `json:"petitioner"`
	Respondent      string `json:"respondent"`
	UnderAct        string `json:"under_act"`
	UnderSection    string `json:"under_section"`
	NextHearingDate string `json:"next_hearing_date"`
	Status          string `json:"status"`
	Note            string `json:"note"`
	UpdatedAt       string `json:"updated_at"`
}

// NewCaseResponse converts a stored case. An unscheduled hearing is rendered as "".
func NewCaseResponse(c entity.Case) CaseResponse {
	next := ""
	if c.NextHearingDate != nil {
		next = c.NextHearingDate.Format(hearingDateLayout)
	}
	return CaseResponse{
		ID:              c.ID,
		CNR:             c.CNR,
		CaseType:        c.CaseType,
		CaseTitle:       c.CaseTitle,
		CourtName:       c.CourtName,
		JudgeName:       c.JudgeName,
		FilingNumber:    c.FilingNumber,
		FilingDate:      c.FilingDate,
		Petitioner:      c.Petitioner,
		Respondent:      c.Respondent,
		UnderAct:        c.UnderAct,
		UnderSection:    c.UnderSection,
		NextHearingDate: next,
		Status:          c.Status,
		Note:            c.Note,
		UpdatedAt:       c.UpdatedAt.Format(updatedAtLayout),
	}
}

// Pagination describes a listing.
type Pagination struct {
	Total int `json:"total"`
}

// CasesEnvelope is the body of GET /api/cases.
type CasesEnvelope struct {
	Success    bool           `json:"success"`
	Cases      []CaseResponse `json:"cases"`
	Pagination Pagination     `json:"pagination"`
}

// NewCasesEnvelope converts a listing.
func NewCasesEnvelope(cases []entity.Case) CasesEnvelope {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, NewCaseResponse(c))
	}
	return CasesEnvelope{Success: true, Cases: out, Pagination: Pagination{Total: len(out)}}
}

// ServiceStatus reports whether the portal answers.
type ServiceStatus struct {
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

// ServiceStatusEnvelope is the body of GET /api/service-status.
type ServiceStatusEnvelope struct {
	Success bool          `json:"success"`
	Status  ServiceStatus `json:"status"`
}
