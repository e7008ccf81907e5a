package ecourts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ecourts_backend/internal/feature/cases/domain/entity"
)

// parseCaseHTML extracts case fields from a portal result page.
// It reports false when the page does not mention cnr or no known row label was found.
func parseCaseHTML(body []byte, cnr string) (entity.CaseInfo, bool, error) {
	if !bytes.Contains(bytes.ToUpper(body), []byte(strings.ToUpper(cnr))) {
		return entity.CaseInfo{}, false, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return entity.CaseInfo{}, false, fmt.Errorf("parse portal html: %w", err)
	}

	info := entity.CaseInfo{
		CNR:           cnr,
		CaseDetails:   entity.CaseDetails{CNRNumber: cnr},
		Source:        liveSource,
		DisplayFormat: displayFormat,
	}
	found := 0
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td, th")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(cellText(cells.Eq(0)))
		if applyRow(&info, label, cellText(cells.Eq(1))) {
			found++
		}
	})
	if found == 0 {
		return entity.CaseInfo{}, false, nil
	}
	return info, true, nil
}

// applyRow stores value in the field named by label. Labels are matched by substring, first rule wins.
func applyRow(info *entity.CaseInfo, label, value string) bool {
	switch {
	case strings.Contains(label, "filing number"):
		info.CaseDetails.FilingNumber = value
	case strings.Contains(label, "filing date"):
		info.CaseDetails.FilingDate = value
	case strings.Contains(label, "court name"):
		info.CourtDetails.CourtName = value
	case strings.Contains(label, "case type"):
		info.CaseType = value
	case strings.Contains(label, "next hearing"):
		info.CaseStatus.NextHearingDate = value
	case strings.Contains(label, "judge"):
		info.CourtDetails.CourtNumberAndJudge = value
	case strings.Contains(label, "petitioner"):
		info.Parties.Petitioners = []entity.Party{{Name: value}}
	case strings.Contains(label, "respondent"):
		info.Parties.Respondents = []entity.Party{{Name: value}}
	default:
		return false
	}
	return true
}

// cellText returns the cell text with runs of whitespace collapsed.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
