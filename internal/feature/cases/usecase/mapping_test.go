package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecourts_backend/internal/feature/cases/domain/entity"
)

func TestApplyCaseInfo(t *testing.T) {
	t.Parallel()

	info := katniCivilSuit()
	c := &entity.Case{CNR: info.CNR}
	ApplyCaseInfo(c, &info)

	assert.Equal(t, "RCS A - CIVIL SUIT CLASS-A", c.CaseType)
	assert.Equal(t, "District and Sessions Court, Katni", c.CourtName)
	assert.Equal(t, "14-I Civil Judge, Junior Division", c.JudgeName)
	assert.Equal(t, "Matter Relating to Hearing Of Interim Application", c.Status)
	assert.Equal(t, "For Arguments", c.SubStage)
	assert.Equal(t, "103/2025", c.FilingNumber)
	assert.Equal(t, "11-01-2025", c.FilingDate)
	assert.Equal(t, "22", c.CaseNumber)
	assert.Equal(t, "2025", c.CaseYear)
	assert.Equal(t, "Ramprasad Lodhi", c.Petitioner)
	assert.Equal(t, "Kiran Bai Lodhi, Phul Singh Lodhi, State Government Through Collector", c.Respondent)
	assert.Equal(t, "Ramprasad Lodhi vs Kiran Bai Lodhi, Phul Singh Lodhi, State Government Through Collector", c.CaseTitle)
	assert.Equal(t, "Specific Relief Act 1963", c.UnderAct)
	assert.Equal(t, "34,38", c.UnderSection)
	assert.Equal(t, realDataNote, c.Note)
	require.NotNil(t, c.NextHearingDate)
	assert.Equal(t, "2025-11-17", c.NextHearingDate.Format(time.DateOnly))
}

func TestApplyCaseInfo_TitleFallsBackToCaseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parties entity.Parties
	}{
		{"no parties", entity.Parties{}},
		{"no respondent", entity.Parties{Petitioners: []entity.Party{{Name: "Ritik Kunde"}}}},
		{"no petitioner", entity.Parties{Respondents: []entity.Party{{Name: "State Government"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := entity.CaseInfo{CaseType: "UN CR - UNREGISTERED-CRIMINAL", Parties: tt.parties}
			c := &entity.Case{}
			ApplyCaseInfo(c, &info)
			assert.Equal(t, "UN CR - UNREGISTERED-CRIMINAL", c.CaseTitle)
		})
	}
}

func TestApplyCaseInfo_OverwritesPreviousValues(t *testing.T) {
	t.Parallel()

	hearing := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &entity.Case{Petitioner: "old", Respondent: "old", UnderAct: "old", NextHearingDate: &hearing}
	info := entity.CaseInfo{CaseStatus: entity.CaseStatus{NextHearingDate: "To be fixed"}}

	ApplyCaseInfo(c, &info)

	assert.Empty(t, c.Petitioner)
	assert.Empty(t, c.Respondent)
	assert.Empty(t, c.UnderAct)
	assert.Nil(t, c.NextHearingDate)
}
