package usecase

import "ecourts_backend/internal/feature/cases/domain/entity"

// katniCivilSuit mirrors the portal record for MP21010003392025.
func katniCivilSuit() entity.CaseInfo {
	return entity.CaseInfo{
		CNR: "MP21010003392025",
		CaseDetails: entity.CaseDetails{
			CNRNumber:          "MP21010003392025",
			FilingNumber:       "103/2025",
			FilingDate:         "11-01-2025",
			RegistrationNumber: "22/2025",
		},
		CourtDetails: entity.CourtDetails{
			CourtName:           "District and Sessions Court, Katni",
			CourtNumberAndJudge: "14-I Civil Judge, Junior Division",
		},
		CaseStatus: entity.CaseStatus{
			CaseStage:       "Matter Relating to Hearing Of Interim Application",
			CaseSubStage:    "For Arguments",
			NextHearingDate: "17th November 2025",
		},
		Parties: entity.Parties{
			Petitioners: []entity.Party{{Name: "Ramprasad Lodhi", Advocate: "SANTOSH KUMAR BURMAN"}},
			Respondents: []entity.Party{
				{Name: "Kiran Bai Lodhi"},
				{Name: "Phul Singh Lodhi"},
				{Name: "State Government Through Collector"},
			},
		},
		CaseType:     "RCS A - CIVIL SUIT CLASS-A",
		UnderAct:     "Specific Relief Act 1963",
		UnderSection: "34,38",
		Source:       "eCourts India Portal - Live Data",
		IsRealData:   true,
	}
}
