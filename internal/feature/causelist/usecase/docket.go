package usecase

import (
	"fmt"
	"strconv"

	cases "ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/causelist/domain/entity"
)

const (
	maxPartiesLen = 50
	maxStageLen   = 25
	defaultStage  = "For Hearing"
)

var (
	timeSlots = []string{"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM", "12:00 PM", "2:00 PM", "2:30 PM", "3:00 PM"}

	sampleCaseTypes = []string{"CC", "CRL.A", "CRL.M.C", "SC", "BAIL", "CRL.REV"}
	sampleStages    = []string{"Arguments", "Evidence", "Final Arguments", "For Orders", "For Hearing", "Judgment Reserved"}
)

// DocketFromCases converts stored cases to numbered docket rows.
// Case numbers without a year use year.
func DocketFromCases(list []cases.Case, year int) []entity.DocketRow {
	rows := make([]entity.DocketRow, 0, len(list))
	for i, c := range list {
		parties := c.CaseTitle
		if parties == "" {
			parties = fmt.Sprintf("Petitioner %d vs Respondent %d", c.ID, c.ID)
		}
		stage := c.Status
		if stage == "" {
			stage = defaultStage
		}
		rows = append(rows, entity.DocketRow{
			SrNo:       strconv.Itoa(i + 1),
			CaseNumber: c.DisplayNumber(year),
			Parties:    Truncate(parties, maxPartiesLen),
			Stage:      Truncate(stage, maxStageLen),
			Time:       timeSlots[i%len(timeSlots)],
		})
	}
	return rows
}

// SampleDocket returns six rows unique to the judge at judgeIndex, for complexes with too few stored cases.
func SampleDocket(judgeIndex, year int) []entity.DocketRow {
	rows := make([]entity.DocketRow, 0, len(sampleStages))
	for i := range sampleStages {
		num := judgeIndex*100 + i + 1
		rows = append(rows, entity.DocketRow{
			SrNo:       strconv.Itoa(i + 1),
			CaseNumber: fmt.Sprintf("%s %d/%d", sampleCaseTypes[i%len(sampleCaseTypes)], num, year),
			Parties:    fmt.Sprintf("Petitioner %d vs Respondent %d", num, num),
			Stage:      sampleStages[i],
			Time:       timeSlots[i%len(timeSlots)],
		})
	}
	return rows
}

// Truncate shortens s to max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
