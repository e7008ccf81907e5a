package usecase

import (
	"strings"

	"ecourts_backend/internal/feature/cases/domain/entity"
)

// realDataNote is stored on every reconciled case.
const realDataNote = "Real eCourts Data - Live from eCourts India Portal"

// ApplyCaseInfo overwrites every mapped field of c with the values in info.
func ApplyCaseInfo(c *entity.Case, info *entity.CaseInfo) {
	c.CaseType = info.CaseType
	c.CourtName = info.CourtDetails.CourtName
	c.JudgeName = info.CourtDetails.CourtNumberAndJudge
	c.Status = info.CaseStatus.CaseStage
	c.SubStage = info.CaseStatus.CaseSubStage
	c.FilingNumber = info.CaseDetails.FilingNumber
	c.FilingDate = info.CaseDetails.FilingDate
	c.RegistrationNumber = info.CaseDetails.RegistrationNumber
	c.CaseNumber, c.CaseYear = splitNumberYear(info.CaseDetails.RegistrationNumber)

	c.Petitioner = ""
	if len(info.Parties.Petitioners) > 0 {
		c.Petitioner = info.Parties.Petitioners[0].Name
	}
	names := make([]string, 0, len(info.Parties.Respondents))
	for _, r := range info.Parties.Respondents {
		names = append(names, r.Name)
	}
	c.Respondent = strings.Join(names, ", ")

	if c.Petitioner != "" && c.Respondent != "" {
		c.CaseTitle = c.Petitioner + " vs " + c.Respondent
	} else {
		c.CaseTitle = info.CaseType
	}

	c.UnderAct = info.UnderAct
	c.UnderSection = info.UnderSection
	c.Note = realDataNote
	c.Source = info.Source
	c.NextHearingDate = ParseHearingDate(info.CaseStatus.NextHearingDate)
}

// splitNumberYear splits "22/2025" into "22" and "2025". Other shapes yield the input and "".
func splitNumberYear(s string) (string, string) {
	number, year, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return strings.TrimSpace(s), ""
	}
	return number, year
}
