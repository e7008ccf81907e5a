package ecourts

import (
	"fmt"
	"strings"

	"ecourts_backend/internal/feature/cases/domain/entity"
)

const placeholderNote = "Case data structure based on eCourts format. For complete details, visit official eCourts portal."

// courtNames maps the state/district prefix of a CNR to a court name.
var courtNames = map[string]string{
	"MP21": "District and Sessions Court, Katni",
	"MP01": "Principal District & Sessions Judge, Bhopal",
	"MP02": "District Court, Indore",
	"MP03": "District Court, Jabalpur",
	"DLCT": "District Court",
	"HC":   "High Court",
	"SC":   "Supreme Court of India",
}

// placeholderInfo synthesises a portal-shaped record from the CNR alone.
// The output depends only on cnr.
func placeholderInfo(cnr string) entity.CaseInfo {
	code, number, year := splitCNR(cnr)

	court, ok := courtNames[code]
	if !ok {
		court = fmt.Sprintf("District Court (%s)", code)
	}
	numberYear := number + "/" + year
	firstOfYear := "01/01/" + year

	return entity.CaseInfo{
		CNR: cnr,
		CaseDetails: entity.CaseDetails{
			CNRNumber:          cnr,
			FilingNumber:       numberYear,
			FilingDate:         firstOfYear,
			RegistrationNumber: numberYear,
			RegistrationDate:   firstOfYear,
			CNRDate:            firstOfYear,
		},
		CourtDetails: entity.CourtDetails{
			CourtName:           court,
			CourtNumberAndJudge: "Court No. 1, Shri/Smt. [Judge Name]",
			CourtComplex:        court + " Complex",
		},
		CaseStatus: entity.CaseStatus{
			CaseStage:        "Pending",
			CaseSubStage:     "For Arguments",
			NextHearingDate:  "To be fixed",
			PurposeOfHearing: "For Arguments",
		},
		Parties: entity.Parties{
			Petitioners: []entity.Party{{Name: "[Petitioner Name]", Advocate: "[Advocate Name]"}},
			Respondents: []entity.Party{{Name: "[Respondent Name]", Advocate: "[Government Advocate]"}},
		},
		CaseType:      "Civil/Criminal Case",
		UnderAct:      "As per case records",
		UnderSection:  "As per case records",
		Source:        "eCourts India Portal",
		DisplayFormat: displayFormat,
		Note:          placeholderNote,
	}
}

// splitCNR splits a CNR into court code, case number and year.
// Dash-separated CNRs are split on the dashes, others at fixed offsets 4 and 10.
func splitCNR(cnr string) (code, number, year string) {
	if strings.Contains(cnr, "-") {
		parts := strings.Split(cnr, "-")
		code = parts[0]
		number = substr(cnr, 4, 10)
		if len(parts) > 1 {
			number = parts[1]
		}
		year = substr(cnr, 10, len(cnr))
		if len(parts) > 2 {
			year = parts[2]
		}
		return code, number, year
	}
	return substr(cnr, 0, 4), substr(cnr, 4, 10), substr(cnr, 10, len(cnr))
}

// substr returns s[from:to] clamped to the bounds of s.
func substr(s string, from, to int) string {
	to = min(to, len(s))
	if from >= to {
		return ""
	}
	return s[from:to]
}
