// Package entity defines cause lists and their docket rows.
package entity

import "time"

// Complex is a court complex that publishes cause lists.
type Complex struct {
	Code string `json:"complex_code"`
	Name string `json:"complex_name"`
}

// Judge is a bench within a complex.
type Judge struct {
	Code      string `json:"judge_code"`
	Name      string `json:"judge_name"`
	CourtRoom string `json:"court_room"`
}

// DocketRow is one line of a cause list.
type DocketRow struct {
	SrNo       string `json:"sr_no"`
	CaseNumber string `json:"case_number"`
	Parties    string `json:"parties"`
	Stage      string `json:"stage"`
	Time       string `json:"time"`
}

// Document is everything needed to render one cause list.
type Document struct {
	JudgeName   string
	CourtRoom   string
	Date        time.Time
	Rows        []DocketRow
	GeneratedAt time.Time
}

// CauseList records a generated cause list file. Rows are write-once.
type CauseList struct {
	ID         uint      `gorm:"primaryKey"`
	BatchID    string    `gorm:"size:36;index;not null;default:''"`
	Date       time.Time `gorm:"type:date;index"`
	CourtName  string    `gorm:"size:200;not null;default:''"`
	JudgeName  string    `gorm:"size:200;not null;default:''"`
	TotalCases int
	// Data is the docket as a JSON array of DocketRow.
	Data      string `gorm:"type:text"`
	FileName  string `gorm:"size:255;not null;default:''"`
	FileSize  int64
	CreatedAt time.Time
}

// TableName pins the table name for every dialect.
func (CauseList) TableName() string {
	return "cause_lists"
}
