// Package entity defines the hearing listings of the hearings feature.
package entity

// Hearing is one listed matter.
type Hearing struct {
	ID            string `json:"id"`
	CNR           string `json:"cnr"`
	CaseTitle     string `json:"case_title"`
	CourtName     string `json:"court_name"`
	JudgeName     string `json:"judge_name"`
	HearingTime   string `json:"hearing_time"`
	SerialNumber  string `json:"serial_number"`
	Parties       string `json:"parties"`
	CaseType      string `json:"case_type"`
	Status        string `json:"status"`
	CourtHall     string `json:"court_hall"`
	Date          string `json:"date"`
	DaysFromToday int    `json:"days_from_today,omitempty"`
	IsLive        bool   `json:"is_live"`
}

// HearingList is a set of hearings for a day or a range of days.
type HearingList struct {
	Date        string    `json:"date,omitempty"`
	DaysAhead   int       `json:"days_ahead,omitempty"`
	Hearings    []Hearing `json:"hearings"`
	Total       int       `json:"total"`
	Source      string    `json:"source"`
	LastUpdated string    `json:"last_updated"`
}
